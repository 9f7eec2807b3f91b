// Package keepass выгружает записи хранилища в базу KeePass (KDBX).
package keepass

import (
	"GuardaSenha/internal/cli/model"
	"fmt"
	"io"
	"strconv"

	gokeepasslib "github.com/tobischo/gokeepasslib/v3"
	w "github.com/tobischo/gokeepasslib/v3/wrappers"
)

// RootGroupName: имя корневой группы выгружаемой базы.
const RootGroupName = "GuardaSenha"

// Export пишет в out базу KDBX, защищённую password, с одной записью на каждый credential.
func Export(out io.Writer, creds []model.Credential, password string) error {
	if password == "" {
		return fmt.Errorf("%w: kdbx password is empty", model.ErrInvalidConfiguration)
	}

	root := gokeepasslib.NewGroup()
	root.Name = RootGroupName
	for _, c := range creds {
		root.Entries = append(root.Entries, newEntry(c))
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	db.Content.Root = &gokeepasslib.RootData{
		Groups: []gokeepasslib.Group{root},
	}

	// защищённые поля шифруются потоковым ключом только после блокировки
	if err := db.LockProtectedEntries(); err != nil {
		return fmt.Errorf("lock protected entries: %w", err)
	}
	if err := gokeepasslib.NewEncoder(out).Encode(db); err != nil {
		return fmt.Errorf("encode kdbx: %w", err)
	}
	return nil
}

func newEntry(c model.Credential) gokeepasslib.Entry {
	e := gokeepasslib.NewEntry()
	e.Values = append(e.Values,
		value("Title", c.System, false),
		value("UserName", c.Login, false),
		value("Password", c.Password, true),
		value("GuardaSenhaID", strconv.FormatInt(c.ID, 10), false),
	)
	return e
}

func value(key, content string, protected bool) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key:   key,
		Value: gokeepasslib.V{Content: content, Protected: w.NewBoolWrapper(protected)},
	}
}
