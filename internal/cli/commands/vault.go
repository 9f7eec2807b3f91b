package commands

import (
	"GuardaSenha/internal/cli/bootstrap"
	"GuardaSenha/internal/cli/model"
	"GuardaSenha/internal/cli/service"
	"GuardaSenha/internal/config"
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// Log: логгер команд; main подставляет настроенный.
var Log = zap.NewNop().Sugar()

func openVault(ctx context.Context, cfg *config.Config) (*service.Vault, func() error, error) {
	return bootstrap.OpenVault(ctx, cfg, Log)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// remindMasterPassword печатает подсказку, пока пользователь не решил вопрос с мастер-паролем.
func remindMasterPassword(ctx context.Context, v *service.Vault) {
	st, err := v.MasterState(ctx)
	if err != nil || st != model.MasterUnset {
		return
	}
	fmt.Fprintln(Out, "• Мастер-пароль не настроен: guardasenha master enable | guardasenha master decline")
}

func printCredential(c model.Credential) {
	fmt.Fprintf(Out, "id:        %d\n", c.ID)
	fmt.Fprintf(Out, "system:    %s\n", c.System)
	fmt.Fprintf(Out, "login:     %s\n", c.Login)
	fmt.Fprintf(Out, "password:  %s\n", c.Password)
}
