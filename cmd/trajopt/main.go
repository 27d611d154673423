package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajopt/internal/boundary"
	"github.com/san-kum/trajopt/internal/config"
	"github.com/san-kum/trajopt/internal/model"
	"github.com/san-kum/trajopt/internal/phase"
	"github.com/san-kum/trajopt/internal/storage"
	"github.com/san-kum/trajopt/internal/tui"
)

var (
	dataDir string
	preset  string
	noSave  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trajopt",
		Short: "boundary constraint setup for trajectory optimization phases",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".trajopt", "data directory")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a phase config",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	checkCmd := &cobra.Command{
		Use:   "check [config]",
		Short: "build the phase and report its constraint set",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [config]",
		Short: "build, evaluate and save the pass-through values",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing a report")

	viewCmd := &cobra.Command{
		Use:   "view [config]",
		Short: "browse the constraint set interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved reports",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in phase presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(initCmd, checkCmd, evalCmd, viewCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset %q", preset)
		}
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d constraints)\n", args[0], len(cfg.Constraints))
	return nil
}

// assemble declares every configured constraint on a fresh phase and
// builds it into a fresh model.
func assemble(cfg *config.Config) (*phase.System, error) {
	p := phase.New(cfg.Phase)
	for _, cc := range cfg.Constraints {
		loc, spec, err := cc.ToSpec()
		if err != nil {
			return nil, err
		}
		if err := p.AddBoundaryConstraint(loc, spec); err != nil {
			return nil, err
		}
	}
	return p.Setup(model.New())
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	sys, err := assemble(cfg)
	if err != nil {
		return err
	}

	m := sys.Model()
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLOC\tOUTPUT\tSIZE\tUNITS\tBOUNDS\tLINEAR")
	for _, c := range sys.Comps() {
		for _, v := range c.Vars() {
			meta, _ := m.ConstraintOn(v.OutputName)
			units := ""
			if vv, ok := m.Variable(v.OutputName); ok {
				units = vv.Units
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%t\n",
				v.Name, c.Loc(), v.OutputName, v.Size, units, describeBounds(meta), meta.Linear)
		}
	}
	w.Flush()

	fmt.Printf("\n%d inputs, %d outputs, %d constrained\n",
		len(m.Inputs()), len(m.Outputs()), len(m.ConstrainedOutputs()))
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	sys, err := assemble(cfg)
	if err != nil {
		return err
	}

	m := sys.Model()
	for _, cc := range cfg.Constraints {
		if cc.Value == nil {
			continue
		}
		loc, _, err := cc.ToSpec()
		if err != nil {
			return err
		}
		if err := m.SetValue(loc.InputName(cc.Name), cc.Value); err != nil {
			return err
		}
	}

	sys.Evaluate()

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "OUTPUT\tVALUE\tBOUNDS")
	records := make([]storage.ConstraintRecord, 0)
	values := make(map[string][]float64)
	plots := make([]string, 0)
	for _, c := range sys.Comps() {
		for _, v := range c.Vars() {
			meta, _ := m.ConstraintOn(v.OutputName)
			out := m.Value(v.OutputName)
			fmt.Fprintf(w, "%s\t%v\t%s\n", v.OutputName, out, describeBounds(meta))

			units := ""
			if vv, ok := m.Variable(v.OutputName); ok {
				units = vv.Units
			}
			records = append(records, storage.ConstraintRecord{
				Name:   v.Name,
				Loc:    string(c.Loc()),
				Output: v.OutputName,
				Shape:  v.Shape,
				Units:  units,
				Lower:  meta.Lower,
				Upper:  meta.Upper,
				Equals: meta.Equals,
				Linear: meta.Linear,
			})
			values[v.OutputName] = out

			if len(out) > 1 {
				plots = append(plots, asciigraph.Plot(out, asciigraph.Height(8), asciigraph.Caption(v.OutputName)))
			}
		}
	}
	w.Flush()

	for _, plot := range plots {
		fmt.Println()
		fmt.Println(plot)
	}

	if noSave {
		return nil
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(cfg.Phase, records, values)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved %s\n", runID)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	sys, err := assemble(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewBrowser(cfg.Phase, sys), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPHASE\tCONSTRAINTS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			run.ID, run.Phase, len(run.Constraints), run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func describeBounds(meta boundary.ConstraintMeta) string {
	switch {
	case meta.Equals != nil:
		return "= " + describeBound(meta.Equals)
	case meta.Lower != nil && meta.Upper != nil:
		return fmt.Sprintf("[%s, %s]", describeBound(meta.Lower), describeBound(meta.Upper))
	default:
		return "none"
	}
}

func describeBound(b []float64) string {
	parts := make([]string, len(b))
	for i, v := range b {
		switch {
		case v <= -boundary.InfBound:
			parts[i] = "-inf"
		case v >= boundary.InfBound:
			parts[i] = "+inf"
		default:
			parts[i] = fmt.Sprintf("%g", v)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " ") + ")"
}
