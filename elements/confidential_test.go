package elements

import (
	"testing"

	"rubin.dev/simplicity/bitmachine"
)

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfidentialFieldBitWidths(t *testing.T) {
	cases := []struct {
		name  string
		field ConfidentialField
		width int
	}{
		{"asset explicit", ExplicitField(KindAsset, make([]byte, 32)), 258},
		{"asset confidential", ConfidentialPoint(KindAsset, 0x0b, [32]byte{}), 258},
		{"value explicit", ExplicitField(KindValue, make([]byte, 8)), 258},
		{"value confidential", ConfidentialPoint(KindValue, 0x09, [32]byte{}), 258},
		{"nonce null", NullField(KindNonce), 259},
		{"nonce explicit", ExplicitField(KindNonce, make([]byte, 32)), 259},
		{"nonce confidential", ConfidentialPoint(KindNonce, 0x03, [32]byte{}), 259},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mac := bitmachine.New(0)
			must(t, mac.NewFrame(tc.width))
			if err := tc.field.EncodeSimplicity(mac); err != nil {
				t.Fatalf("EncodeSimplicity: %v", err)
			}
			if err := mac.MoveFrame(); err != nil {
				t.Fatalf("frame not fully written at expected width %d: %v", tc.width, err)
			}
		})
	}
}

func TestConfidentialAssetRejectsNull(t *testing.T) {
	mac := bitmachine.New(0)
	must(t, mac.NewFrame(258))
	if err := NullField(KindAsset).EncodeSimplicity(mac); err == nil {
		t.Fatal("expected error encoding a Null asset field")
	}
}

func TestConfidentialPrefixValidation(t *testing.T) {
	mac := bitmachine.New(0)
	must(t, mac.NewFrame(258))
	bad := ConfidentialPoint(KindAsset, 0x02, [32]byte{})
	if err := bad.EncodeSimplicity(mac); err == nil {
		t.Fatal("expected MalformedField for an out-of-set asset prefix")
	}
}
