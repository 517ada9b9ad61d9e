package cli

import (
	"fmt"

	"github.com/mwantia/lumen/pkg/core"
	"github.com/spf13/cobra"
)

// NewHeapCommand builds a small object graph directly on a core.Heap,
// forces a collection, and reports before/after accounting. It exists to
// watch the allocator and collector behave without needing a compiler or
// a script to drive them.
func NewHeapCommand() *cobra.Command {
	var count int
	var minHeapSize int64
	var growPercent int

	cmd := &cobra.Command{
		Use:   "heap",
		Short: "Allocate a sample object graph and report GC accounting",
		RunE: func(cmd *cobra.Command, args []string) error {
			heap := core.NewHeap(minHeapSize, growPercent)

			list := core.NewList(heap)
			heap.PushRoot(list)
			for i := 0; i < count; i++ {
				s := core.NewString(heap, fmt.Sprintf("item-%d", i))
				list.Push(heap, core.FromObj(s))
			}
			heap.PopRoot()

			before := heap.Stats()
			printStats(cmd, "before collect", before)

			heap.Collect()

			after := heap.Stats()
			printStats(cmd, "after collect", after)

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "number of strings to allocate into a list")
	cmd.Flags().Int64Var(&minHeapSize, "min-heap", 0, "minimum heap size before a collection runs (0 = core default)")
	cmd.Flags().IntVar(&growPercent, "grow-percent", 0, "heap growth percentage between collections (0 = core default)")

	return cmd
}

func printStats(cmd *cobra.Command, label string, s core.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", label)
	fmt.Fprintf(cmd.OutOrStdout(), "  bytesAllocated: %d\n", s.BytesAllocated)
	fmt.Fprintf(cmd.OutOrStdout(), "  nextGC:         %d\n", s.NextGC)
	fmt.Fprintf(cmd.OutOrStdout(), "  liveObjects:    %d\n", s.LiveObjects)
	for k, n := range s.ByKind {
		fmt.Fprintf(cmd.OutOrStdout(), "    %-10s %d\n", k, n)
	}
}
