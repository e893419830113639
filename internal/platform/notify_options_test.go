package platform

import "testing"

func TestSubtitle(t *testing.T) {
	cases := map[Kind]string{
		KindSaved:  "Picture saved",
		KindCopied: "Picture copied",
		"":         AppName,
	}
	for k, want := range cases {
		if got := (Options{Kind: k}).subtitle(); got != want {
			t.Errorf("%q: got %q want %q", k, got, want)
		}
	}
}
