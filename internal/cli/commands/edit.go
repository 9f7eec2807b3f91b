package commands

import (
	"GuardaSenha/internal/cli/model"
	"GuardaSenha/internal/config"
	"context"
	"fmt"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Заменить запись целиком" }
func (editCmd) Usage() string       { return "edit <id> <system> <login> <password>" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	c := model.Credential{ID: id, System: args[1], Login: args[2], Password: args[3]}
	if err := v.EditCredential(ctx, c); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %d\n", id)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
