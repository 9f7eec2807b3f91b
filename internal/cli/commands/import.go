package commands

import (
	"GuardaSenha/internal/cli/model"
	fsrepo "GuardaSenha/internal/cli/repo/fs"
	"GuardaSenha/internal/config"
	"context"
	"errors"
	"fmt"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Импортировать записи из файла экспорта; без аргумента путь читается из stdin"
}
func (importCmd) Usage() string { return "import [<file>]" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var picked string
	if len(args) == 1 {
		picked = args[0]
	} else {
		fmt.Fprint(Out, "File to import (empty to cancel): ")
		p, err := fsrepo.ReadPickedPath(In)
		if err != nil && !errors.Is(err, model.ErrImportCancelled) {
			return err
		}
		picked = p
	}

	staged, err := fsrepo.NewDocumentStore(cfg.ExportDir).Stage(picked)
	if errors.Is(err, model.ErrImportCancelled) {
		fmt.Fprintln(Out, "Импорт отменён")
		return nil
	}
	if err != nil {
		return err
	}
	defer staged.Release()

	data, err := staged.Read()
	if err != nil {
		return err
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	res, err := v.Import(ctx, data)
	switch {
	case errors.Is(err, model.ErrDecryptionFailed):
		fmt.Fprintln(Out, "Не удалось расшифровать файл: проверьте мастер-пароль")
		return err
	case errors.Is(err, model.ErrInvalidBundle):
		fmt.Fprintln(Out, "Файл не является экспортом GuardaSenha")
		return err
	case err != nil:
		return err
	}
	fmt.Fprintf(Out, "Импортировано: %d\n", len(res.Imported))
	fmt.Fprintf(Out, "Всего: %d\n", res.Total)
	return nil
}

func init() { RegisterCmd(importCmd{}) }
