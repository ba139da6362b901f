package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinksUseFrontendBaseURL(t *testing.T) {
	t.Setenv("FRONTEND_BASE_URL", "https://noterepo.app")

	assert.Equal(t, "https://noterepo.app/welcome?user=u1", Welcome("u1"))
	assert.Equal(t, "https://noterepo.app/sign-in", SignIn())
	assert.Equal(t, "https://noterepo.app/verify?token=tok", Verify("tok"))
	assert.Equal(t, "https://noterepo.app/reset-password?token=tok", ResetPassword("tok"))
}

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"johndoe@example.com": "joh****@example.com",
		"abcd@x.io":           "abc*@x.io",
		"abc@x.io":            "abc@x.io", // too short to mask
		"ab@x.io":             "ab@x.io",
	}

	for in, want := range cases {
		assert.Equal(t, want, MaskEmail(in), "input %q", in)
	}
}
