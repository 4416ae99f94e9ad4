package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gallery_shallery/internal/app"
	"gallery_shallery/internal/config"
	"gallery_shallery/internal/domain/models"

	"github.com/fatih/color"
)

const usage = `usage: backupctl [-config path] <command> [flags]

commands:
  export [-dir d]          save the stored state as a backup file
  import -file f           replace the stored state with any backup file
  import -name n [-dir d]  replace the stored state with a file from the backup dir
  delete -name n [-dir d]  remove a file from the backup dir
  list [-dir d]            list backup files in the backup dir
`

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	infoColor = color.New(color.FgCyan)
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *configPath == "" || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoadPath(*configPath)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), log, cfg, flag.Arg(0), flag.Args()[1:]); err != nil {
		failColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	dir := fs.String("dir", "", "backup directory")
	file := fs.String("file", "", "backup file (import)")
	name := fs.String("name", "", "file name in the backup dir (import, delete)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dir != "" {
		cfg.Backup.Dir = *dir
	}
	if cfg.Storage.Backend == "" || cfg.Storage.Backend == "memory" {
		infoColor.Fprintln(os.Stderr, "warning: memory storage does not outlive this process")
	}

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	switch command {
	case "export":
		saved, size, err := application.Backup.SaveLocal(ctx, application.Gallery.Snapshot())
		if err != nil {
			return err
		}
		okColor.Printf("exported %d albums ", len(application.Gallery.Albums()))
		fmt.Printf("to %s (%d bytes)\n", saved, size)

	case "import":
		var bundle *models.BackupBundle
		switch {
		case *name != "":
			bundle, err = application.Backup.ImportFile(ctx, *name)
		case *file != "":
			bundle, err = importPath(application, *file)
		default:
			return fmt.Errorf("import: -file or -name is required")
		}
		if err != nil {
			return err
		}
		application.Backup.ApplyBundle(ctx, bundle, application.Gallery)
		okColor.Printf("imported %d albums ", len(bundle.Albums))
		fmt.Printf("(exported %s, version %s)\n", bundle.ExportDate, bundle.Version)

	case "delete":
		if *name == "" {
			return fmt.Errorf("delete: -name is required")
		}
		if err := application.Backup.DeleteLocal(ctx, *name); err != nil {
			return err
		}
		okColor.Print("deleted ")
		fmt.Println(*name)

	case "list":
		names, err := application.Backup.ListLocal(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			infoColor.Println("no backups in", application.Backup.Dir())
		}
		for _, n := range names {
			fmt.Println(n)
		}

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func importPath(application *app.App, path string) (*models.BackupBundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return application.Backup.ImportReader(f)
}
