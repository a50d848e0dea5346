package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grasmash/drupal-environment-detector/internal/detector"
)

func TestSiteSettings_MultisiteDBName(t *testing.T) {
	cases := map[string]struct {
		settings     *detector.SiteSettings
		expectedName string
		expectedOK   bool
	}{
		"present": {
			settings: &detector.SiteSettings{
				Conf: map[string]string{detector.MultisiteDBNameKey: "acmedb42"},
			},
			expectedName: "acmedb42",
			expectedOK:   true,
		},
		"present-empty": {
			settings: &detector.SiteSettings{
				Conf: map[string]string{detector.MultisiteDBNameKey: ""},
			},
			expectedName: "",
			expectedOK:   true,
		},
		"missing-key": {
			settings:   &detector.SiteSettings{Conf: map[string]string{}},
			expectedOK: false,
		},
		"nil-conf": {
			settings:   &detector.SiteSettings{},
			expectedOK: false,
		},
		"nil-settings": {
			settings:   nil,
			expectedOK: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dbName, ok := tc.settings.MultisiteDBName()
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedName, dbName)
		})
	}
}
