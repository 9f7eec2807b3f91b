package commands

import (
	"GuardaSenha/internal/cli/passgen"
	"GuardaSenha/internal/config"
	"context"
	"fmt"
)

type strengthCmd struct{}

func (strengthCmd) Name() string        { return "strength" }
func (strengthCmd) Description() string { return "Оценить надёжность пароля" }
func (strengthCmd) Usage() string       { return "strength [<password>]" }

func (strengthCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var pw string
	if len(args) == 1 {
		pw = args[0]
	} else {
		p, err := Passwords.ReadPassword("Password: ")
		if err != nil {
			return err
		}
		pw = p
	}
	fmt.Fprintf(Out, "strength: %s\n", passgen.Classify(pw))
	return nil
}

func init() { RegisterCmd(strengthCmd{}) }
