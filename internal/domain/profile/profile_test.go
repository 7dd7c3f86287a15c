package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPictureTransform_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		transform PictureTransform
		wantErr   error
	}{
		{"default", DefaultPictureTransform(), nil},
		{"max zoom and offsets", PictureTransform{Scale: 2.0, OffsetX: 50, OffsetY: -50}, nil},
		{"scale below min", PictureTransform{Scale: 0.9}, ErrScaleOutOfRange},
		{"scale above max", PictureTransform{Scale: 2.1}, ErrScaleOutOfRange},
		{"zero scale", PictureTransform{}, ErrScaleOutOfRange},
		{"offset_x too small", PictureTransform{Scale: 1.5, OffsetX: -51}, ErrOffsetXOutOfRange},
		{"offset_x too large", PictureTransform{Scale: 1.5, OffsetX: 51}, ErrOffsetXOutOfRange},
		{"offset_y too small", PictureTransform{Scale: 1.5, OffsetY: -51}, ErrOffsetYOutOfRange},
		{"offset_y too large", PictureTransform{Scale: 1.5, OffsetY: 51}, ErrOffsetYOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.transform.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	p := &Profile{Picture: DefaultPictureTransform()}
	assert.ErrorIs(t, p.Validate(), ErrEmptyUsername)

	p.Username = "khoa"
	assert.NoError(t, p.Validate())

	p.Picture.Scale = 3.0
	assert.ErrorIs(t, p.Validate(), ErrScaleOutOfRange)
}
