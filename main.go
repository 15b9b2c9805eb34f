package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dot5enko/mini-column-sql/manager"
	"github.com/dot5enko/mini-column-sql/manager/meta"
	"github.com/dot5enko/mini-column-sql/manager/query"
	"github.com/fatih/color"
)

func main() {

	dir := flag.String("dir", ".", "directory holding the catalog and table data files")
	catalog := flag.String("catalog", "metadata.txt", "catalog file, relative to -dir unless absolute")
	workers := flag.Int("workers", meta.DefaultLoadWorkers, "number of tables decoded concurrently")
	verbose := flag.Bool("v", false, "log pipeline stages to stderr")
	debug := flag.Bool("debug", false, "dump the query plan to stderr before running it")
	describe := flag.Bool("describe", false, "print loaded tables and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] \"SELECT ... ;\"\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	sql := strings.TrimSpace(strings.Join(flag.Args(), " "))

	if isQuit(sql) {
		fmt.Println("Ok")
		return
	}

	if sql == "" && !*describe {
		flag.Usage()
		os.Exit(2)
	}

	m := manager.New(manager.ManagerConfig{
		PathToStorage: *dir,
		CatalogFile:   *catalog,
		LoadWorkers:   *workers,
	})

	if loadErr := m.Load(context.Background()); loadErr != nil {
		fail(loadErr)
	}

	if *describe {
		renderTables(os.Stdout, m.Describe())
		return
	}

	plan, parseErr := query.Parse(sql)
	if parseErr != nil {
		fail(parseErr)
	}

	if *debug {
		fmt.Fprint(os.Stderr, spew.Sdump(plan))
	}

	result, execErr := m.Execute(plan)
	if execErr != nil {
		fail(execErr)
	}

	renderResult(os.Stdout, result)
}

func isQuit(sql string) bool {
	return strings.EqualFold(strings.TrimSpace(strings.TrimSuffix(sql, ";")), "QUIT")
}

func fail(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "error: %s\n", err.Error())
	os.Exit(1)
}
