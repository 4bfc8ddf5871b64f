package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-hilbert/render"
	"github.com/spf13/cobra"
)

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hilbert",
		Short: "Hilbert curve index conversion",
		Long: `Converts between 2D unsigned integer coordinates and their index on the
Hilbert curve. The curve is the same for every width: a cell keeps its index
when it is encoded with a wider coordinate type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.initLog()
			return nil
		},
	}
	addGlobalFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(a.encodeCmd(), a.decodeCmd(), a.drawCmd())
	return root
}

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode X Y",
		Short: "Print the curve index of the cell (X, Y)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rec, err := encodeRecord(a.cfg.Width, args[0], args[1])
			if err != nil {
				return err
			}
			a.log.Debugf("encode: width=%d x=%d y=%d index=%s", rec.Width, rec.X, rec.Y, rec.Index)
			return writeRecord(cmd.OutOrStdout(), a.cfg.Format, rec, false)
		},
	}
	addWidthFlag(cmd.Flags(), &a.cfg)
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode INDEX",
		Short: "Print the cell at a curve index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			rec, err := decodeRecord(a.cfg.Width, args[0])
			if err != nil {
				return err
			}
			a.log.Debugf("decode: width=%d index=%s x=%d y=%d", rec.Width, rec.Index, rec.X, rec.Y)
			return writeRecord(cmd.OutOrStdout(), a.cfg.Format, rec, true)
		},
	}
	addWidthFlag(cmd.Flags(), &a.cfg)
	return cmd
}

func (a *app) drawCmd() *cobra.Command {
	opts := render.DefaultOptions()
	var out string

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the curve to a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := render.WritePNG(f, opts); err != nil {
				f.Close()
				os.Remove(out)
				return fmt.Errorf("draw order %d at %dpx: %w", opts.Order, opts.Size, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Infof("wrote %s: order %d, %dx%d px", out, opts.Order, opts.Size, opts.Size)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.UintVarP(&opts.Order, "order", "n", opts.Order, "curve order, the grid is 2^order cells square (1-8)")
	fs.IntVar(&opts.Size, "size", opts.Size, "image width and height in pixels")
	fs.IntVar(&opts.Border, "border", opts.Border, "margin around the curve in pixels")
	fs.StringVarP(&out, "out", "o", "hilbert.png", "output file")
	return cmd
}
