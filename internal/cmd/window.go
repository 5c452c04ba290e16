package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/virt"
)

// WindowCmd returns the `vlist window` command, a one-shot range
// calculation for scripting and debugging.
func WindowCmd() *cobra.Command {
	var (
		offset     float64
		itemExtent float64
		visible    int
		overscan   int
		count      int
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Compute the rendered index range for a scroll position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must be >= 0, got %d", count)
			}
			w := virt.ComputeWindow(offset, itemExtent, visible, overscan, count)
			out := cmd.OutOrStdout()
			if w.Empty() {
				fmt.Fprintln(out, "window: empty")
				return nil
			}
			fmt.Fprintf(out, "window: [%d, %d] (%d items)\n", w.First, w.Last, w.Len())
			fmt.Fprintf(out, "leading edge: %.2f\n", float64(w.First)*itemExtent)
			return nil
		},
	}
	cmd.Flags().Float64Var(&offset, "offset", 0, "scroll offset in cells")
	cmd.Flags().Float64Var(&itemExtent, "item-extent", 1, "size of one item in cells")
	cmd.Flags().IntVar(&visible, "visible", virt.DefaultVisibleCount, "items visible at once")
	cmd.Flags().IntVar(&overscan, "overscan", virt.DefaultOverscan, "extra items beyond each edge")
	cmd.Flags().IntVar(&count, "count", 0, "total items in the dataset")
	return cmd
}
