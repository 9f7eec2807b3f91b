package commands

import (
	"GuardaSenha/internal/config"
	"context"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Показать запись по id, включая пароль" }
func (getCmd) Usage() string       { return "get <id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	c, err := v.Credential(ctx, id)
	if err != nil {
		return err
	}
	printCredential(c)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
