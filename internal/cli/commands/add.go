package commands

import (
	"GuardaSenha/internal/cli/passgen"
	"GuardaSenha/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
)

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Добавить запись; без пароля он запрашивается или генерируется (--generate)"
}
func (addCmd) Usage() string {
	return "add [--generate [--length N]] <system> <login> [<password>]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	generate := fs.Bool("generate", false, "сгенерировать пароль")
	length := fs.Int("length", 16, "длина генерируемого пароля")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		return ErrUsage
	}
	if *generate && len(rest) == 3 {
		return ErrUsage
	}
	system, login := rest[0], rest[1]

	var password string
	switch {
	case len(rest) == 3:
		password = rest[2]
	case *generate:
		pw, err := passgen.Generate(*length, passgen.Lower|passgen.Upper|passgen.Digit|passgen.Special)
		if err != nil {
			return err
		}
		password = pw
	default:
		pw, err := Passwords.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		password = pw
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	c, err := v.AddCredential(ctx, system, login, password)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %d\n", c.ID)
	fmt.Fprintf(Out, "  system:   %s\n", c.System)
	fmt.Fprintf(Out, "  login:    %s\n", c.Login)
	if *generate {
		fmt.Fprintf(Out, "  password: %s\n", c.Password)
	}
	fmt.Fprintf(Out, "  strength: %s\n", passgen.Classify(c.Password))
	return nil
}

func init() { RegisterCmd(addCmd{}) }
