package commands

import (
	"GuardaSenha/internal/config"
	"context"
	"fmt"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить запись по id" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
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

	if err := v.DeleteCredential(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", id)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
