package crypto

import (
	"errors"
	"strings"
	"testing"

	"GuardaSenha/internal/cli/model"
)

const testSecret = "guardasenha-dev-secret"

// Вектор получен через `openssl enc -aes-256-cbc -md md5` с паролем testSecret+"hunter2"
// и солью 0102030405060708: совпадает с форматом CryptoJS.
const openSSLVector = "U2FsdGVkX18BAgMEBQYHCF00ZIrh0zJHgtuFTJi06arZJzcTeeiJrUjNg3PTHCahJWbyF3GWVbv+xkVQ2fBlEvwdgFvlJ3Lz5sATSZf9WjFL/pDPAZrL1uGpjxiOgQ6I"

func enabled(pw string) *model.MasterSettings {
	return &model.MasterSettings{Enabled: true, Key: pw, QuestionAsked: true}
}

func TestEffectiveKey(t *testing.T) {
	cases := []struct {
		name string
		s    *model.MasterSettings
		use  bool
		want string
	}{
		{"no settings", nil, true, testSecret},
		{"disabled", &model.MasterSettings{Key: "ignored"}, true, testSecret},
		{"enabled but not requested", enabled("pw"), false, testSecret},
		{"enabled and requested", enabled("pw"), true, testSecret + "pw"},
		{"enabled with empty key", enabled(""), true, testSecret},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectiveKey(testSecret, tc.s, tc.use); got != tc.want {
				t.Fatalf("EffectiveKey = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewCipher(testSecret)
	in := []model.Credential{{ID: 1, System: "Mail", Login: "a@b.com", Password: "x"}}

	for _, use := range []bool{false, true} {
		ct, err := c.Encrypt(in, enabled("hunter2"), use)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if !strings.HasPrefix(ct, "U2FsdGVkX1") {
			t.Fatalf("ciphertext must carry the Salted__ header, got %q", ct)
		}
		var out []model.Credential
		if err := c.Decrypt(ct, enabled("hunter2"), use, &out); err != nil {
			t.Fatalf("decrypt(use=%v): %v", use, err)
		}
		if len(out) != 1 || out[0] != in[0] {
			t.Fatalf("round-trip failed: %+v", out)
		}
	}
}

func TestEncrypt_UsesFreshSalt(t *testing.T) {
	c := NewCipher(testSecret)
	a, err := c.Encrypt("same", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encrypt("same", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two encryptions of the same value must differ")
	}
}

func TestDecrypt_CrossRecipeFails(t *testing.T) {
	c := NewCipher(testSecret)
	s := enabled("hunter2")

	withMaster, err := c.Encrypt(map[string]string{"k": "v"}, s, true)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]string
	if err := c.Decrypt(withMaster, s, false, &out); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed for master->plain, got %v", err)
	}

	plain, err := c.Encrypt(map[string]string{"k": "v"}, s, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Decrypt(plain, s, true, &out); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed for plain->master, got %v", err)
	}
}

func TestDecrypt_OpenSSLVector(t *testing.T) {
	c := NewCipher(testSecret)
	var out []model.Credential
	if err := c.Decrypt(openSSLVector, enabled("hunter2"), true, &out); err != nil {
		t.Fatalf("decrypt vector: %v", err)
	}
	want := model.Credential{ID: 1700000000000, System: "Mail", Login: "a@b.com", Password: "x"}
	if len(out) != 1 || out[0] != want {
		t.Fatalf("unexpected plaintext: %+v", out)
	}

	// под голым секретом padding проходит, но на выходе мусор: это тоже ошибка расшифровки
	if err := c.Decrypt(openSSLVector, nil, true, &out); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed under wrong key, got %v", err)
	}
}

func TestDecrypt_GarbageAndShapeMismatch(t *testing.T) {
	c := NewCipher(testSecret)
	var out []model.Credential

	for _, bad := range []string{"", "not base64 at all", "aGVsbG8gd29ybGQ="} {
		err := c.Decrypt(bad, nil, false, &out)
		if !errors.Is(err, model.ErrDecryptionFailed) {
			t.Fatalf("Decrypt(%q): expected ErrDecryptionFailed, got %v", bad, err)
		}
	}

	ct, err := c.Encrypt("just a string", nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Decrypt(ct, nil, false, &out); !errors.Is(err, model.ErrDecryptionFailed) {
		t.Fatalf("decoding a string into a slice must fail as ErrDecryptionFailed, got %v", err)
	}
}

func TestDecrypt_ErrorDoesNotLeakKey(t *testing.T) {
	c := NewCipher(testSecret)
	var out any
	err := c.Decrypt("garbage", enabled("hunter2"), true, &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "hunter2") || strings.Contains(err.Error(), testSecret) {
		t.Fatalf("error message leaks key material: %v", err)
	}
}
