package commands

import (
	"GuardaSenha/internal/cli/passgen"
	"GuardaSenha/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
)

type generateCmd struct{}

func (generateCmd) Name() string        { return "generate" }
func (generateCmd) Description() string { return "Сгенерировать пароль" }
func (generateCmd) Usage() string {
	return "generate [--length N] [--lower=false] [--upper] [--digits] [--special]"
}

func (generateCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	length := fs.Int("length", passgen.DefaultLength, "длина пароля")
	lower := fs.Bool("lower", true, "строчные буквы")
	upper := fs.Bool("upper", false, "заглавные буквы")
	digits := fs.Bool("digits", false, "цифры")
	special := fs.Bool("special", false, "спецсимволы")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if *length < passgen.MinLength || *length > passgen.MaxLength {
		return ErrUsage
	}

	var classes passgen.Class
	for _, opt := range []struct {
		on bool
		c  passgen.Class
	}{{*lower, passgen.Lower}, {*upper, passgen.Upper}, {*digits, passgen.Digit}, {*special, passgen.Special}} {
		if opt.on {
			classes |= opt.c
		}
	}
	pw, err := passgen.Generate(*length, classes)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, pw)
	fmt.Fprintf(Out, "strength: %s\n", passgen.Classify(pw))
	return nil
}

func init() { RegisterCmd(generateCmd{}) }
