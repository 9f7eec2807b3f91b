package commands

import (
	"GuardaSenha/internal/cli/keepass"
	"GuardaSenha/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

type exportKDBXCmd struct{}

func (exportKDBXCmd) Name() string { return "export-kdbx" }
func (exportKDBXCmd) Description() string {
	return "Выгрузить расшифрованные записи в базу KeePass"
}
func (exportKDBXCmd) Usage() string { return "export-kdbx [--password <p>] <file>" }

func (exportKDBXCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export-kdbx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	password := fs.String("password", "", "пароль базы KeePass")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return ErrUsage
	}
	path := fs.Arg(0)
	if *password == "" {
		pw, err := readNewPassword("KeePass password")
		if err != nil {
			return err
		}
		*password = pw
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	creds, err := v.Credentials(ctx)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := keepass.Export(f, creds, *password); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported %d records: %s\n", len(creds), path)
	return nil
}

func init() { RegisterCmd(exportKDBXCmd{}) }
