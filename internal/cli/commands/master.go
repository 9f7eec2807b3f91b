package commands

import (
	"GuardaSenha/internal/cli/service"
	"GuardaSenha/internal/config"
	"context"
	"fmt"
)

type masterCmd struct{}

func (masterCmd) Name() string { return "master" }
func (masterCmd) Description() string {
	return "Мастер-пароль: статус, включение, выключение, смена, отказ"
}
func (masterCmd) Usage() string {
	return "master status|enable [<password>]|disable|change [<password>]|decline"
}

func (masterCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "status", "disable", "decline":
		if len(rest) != 0 {
			return ErrUsage
		}
	case "enable", "change":
		if len(rest) > 1 {
			return ErrUsage
		}
	default:
		return ErrUsage
	}

	// пароль запрашиваем до открытия хранилища, чтобы не держать блокировку во время ввода
	var password string
	if sub == "enable" || sub == "change" {
		if len(rest) == 1 {
			password = rest[0]
		} else {
			pw, err := readNewPassword("master password")
			if err != nil {
				return err
			}
			password = pw
		}
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	var t service.Transition
	switch sub {
	case "status":
		st, err := v.MasterState(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "master password: %s\n", st)
		return nil
	case "decline":
		if err := v.DeclineMasterPassword(ctx); err != nil {
			return err
		}
		st, err := v.MasterState(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "master password: %s\n", st)
		return nil
	case "enable":
		t, err = v.EnableMasterPassword(ctx, password)
	case "disable":
		t, err = v.DisableMasterPassword(ctx)
	case "change":
		t, err = v.ChangeMasterPassword(ctx, password)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "master password: %s → %s\n", t.From, t.To)
	fmt.Fprintf(Out, "re-encrypted records: %d\n", len(t.Credentials))
	return nil
}

func init() { RegisterCmd(masterCmd{}) }
