package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/seedworks/taskgen/internal/logger"
	"github.com/seedworks/taskgen/internal/store"
)

type StatsCmd struct {
	Path string `arg:"" help:"Path to an existing database file" type:"existingfile"`
	Top  int    `help:"Number of busiest users to show" default:"10"`
}

func (c *StatsCmd) Run(ctx context.Context, globals *Globals) error {
	log := logger.Setup(globals.Debug)

	st, err := store.Open(c.Path, log)
	if err != nil {
		return err
	}
	defer st.Close()

	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, name := range store.TableNames() {
		fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	workloads, err := st.TopWorkloads(ctx, c.Top)
	if err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tDEPARTMENT\tOPEN TASKS")
	for _, row := range workloads {
		fmt.Fprintf(w, "%s\t%s\t%d\n", row.Name, row.Department, row.OpenTasks)
	}
	return w.Flush()
}
