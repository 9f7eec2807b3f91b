package crypto

import (
	"encoding/json"

	openssl "github.com/Luzifer/go-openssl/v4"
	"github.com/pkg/errors"

	"GuardaSenha/internal/cli/model"
)

// Cipher шифрует JSON-значения в формате OpenSSL "Salted__" (AES-256-CBC,
// EVP_BytesToKey/MD5, base64): том же, что выдаёт CryptoJS.AES.encrypt с парольной фразой.
type Cipher struct {
	secret string
	o      *openssl.OpenSSL
}

// NewCipher создаёт движок поверх фиксированного секрета приложения.
func NewCipher(appSecret string) *Cipher {
	return &Cipher{secret: appSecret, o: openssl.New()}
}

// EffectiveKey возвращает ключ для одной операции: секрет приложения, к которому
// дописан мастер-пароль, если он запрошен и включён в настройках.
func EffectiveKey(appSecret string, s *model.MasterSettings, useMasterPassword bool) string {
	if useMasterPassword && s != nil && s.Enabled && s.Key != "" {
		return appSecret + s.Key
	}
	return appSecret
}

// Encrypt сериализует v в JSON и шифрует под ключом, выведенным из s.
func (c *Cipher) Encrypt(v any, s *model.MasterSettings, useMasterPassword bool) (string, error) {
	plain, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "cannot encode payload")
	}
	out, err := c.o.EncryptBytes(EffectiveKey(c.secret, s, useMasterPassword), plain, openssl.BytesToKeyMD5)
	if err != nil {
		return "", errors.Wrap(err, "cannot encrypt payload")
	}
	return string(out), nil
}

// Decrypt расшифровывает ciphertext и декодирует JSON в out.
// Любая неудача возвращается как model.ErrDecryptionFailed; причина не раскрывается,
// чтобы в сообщение не попали данные ключа.
func (c *Cipher) Decrypt(ciphertext string, s *model.MasterSettings, useMasterPassword bool, out any) error {
	plain, err := c.o.DecryptBytes(EffectiveKey(c.secret, s, useMasterPassword), []byte(ciphertext), openssl.BytesToKeyMD5)
	if err != nil {
		return errors.WithMessage(model.ErrDecryptionFailed, "cannot decrypt payload")
	}
	// неверный ключ иногда даёт корректный padding и мусор на выходе
	if !json.Valid(plain) {
		return errors.WithMessage(model.ErrDecryptionFailed, "payload is not valid JSON")
	}
	if err := json.Unmarshal(plain, out); err != nil {
		return errors.WithMessage(model.ErrDecryptionFailed, "payload has unexpected shape")
	}
	return nil
}
