package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/born-ml/minitorch/internal/arch"
	"github.com/born-ml/minitorch/internal/logger"
	"github.com/born-ml/minitorch/internal/module"
	"github.com/born-ml/minitorch/internal/nn"
	"github.com/born-ml/minitorch/internal/scalar"
	"github.com/spf13/cobra"
)

func (app *App) inspectCommand() *cobra.Command {
	var eval bool

	cmd := &cobra.Command{
		Use:   "inspect <arch.yaml>",
		Short: "Print the module tree of an architecture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildModel(args[0])
			if err != nil {
				return err
			}
			if eval {
				model.Eval()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, module.Repr(model))
			return module.Walk(model, func(path string, m module.Module) error {
				if path == "" {
					path = "(root)"
				}
				fmt.Fprintf(out, "%s: %s\n", path, mode(m))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&eval, "eval", false, "Put the model in evaluation mode before printing")

	return cmd
}

func (app *App) paramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params <arch.yaml>",
		Short: "List the named parameters of an architecture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := buildModel(args[0])
			if err != nil {
				return err
			}

			named := model.NamedParameters()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVALUE\tREQUIRES_GRAD")
			for _, np := range named {
				grad := "-"
				if s, ok := np.Parameter.Value().(*scalar.Scalar); ok {
					grad = fmt.Sprint(s.RequiresGrad())
				}
				fmt.Fprintf(tw, "%s\t%v\t%s\n", np.Name, np.Parameter, grad)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d parameters\n", len(named))
			return nil
		},
	}
}

func buildModel(path string) (*nn.Sequential, error) {
	spec, err := arch.Load(path)
	if err != nil {
		return nil, err
	}
	model, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("built model", "name", spec.Name, "parameters", len(model.Parameters()))
	return model, nil
}

// trainable is implemented by every module embedding module.Base.
type trainable interface {
	Training() bool
}

func mode(m module.Module) string {
	if t, ok := m.(trainable); ok && !t.Training() {
		return "eval"
	}
	return "train"
}
