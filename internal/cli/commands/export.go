package commands

import (
	fsrepo "GuardaSenha/internal/cli/repo/fs"
	"GuardaSenha/internal/config"
	"context"
	"flag"
	"fmt"
	"io"
)

type exportCmd struct{}

func (exportCmd) Name() string { return "export" }
func (exportCmd) Description() string {
	return "Экспортировать хранилище в JSON-файл (или вывести с --print)"
}
func (exportCmd) Usage() string { return "export [--print]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	toStdout := fs.Bool("print", false, "вывести пакет вместо записи в файл")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	v, done, err := openVault(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	bundle, err := v.Export(ctx)
	if err != nil {
		return err
	}
	if *toStdout {
		fmt.Fprintln(Out, bundle)
		return nil
	}
	path, err := fsrepo.NewDocumentStore(cfg.ExportDir).WriteExport(bundle)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported: %s\n", path)
	return nil
}

func init() { RegisterCmd(exportCmd{}) }
