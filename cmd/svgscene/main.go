// Command svgscene inspects SVG documents and renders them
// to PNG or PDF files.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgscene"
	"github.com/benoitkugler/svgscene/svggg"
	"github.com/benoitkugler/svgscene/svgpdf"
	"github.com/benoitkugler/svgscene/svgraster"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type config struct {
	verbose  bool
	maxDepth int
}

func (cfg *config) options() svgscene.Options {
	return svgscene.Options{MaxDepth: cfg.maxDepth}
}

func newRootCmd() *cobra.Command {
	var cfg config
	root := &cobra.Command{
		Use:          "svgscene",
		Short:        "Inspect and render SVG documents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if cfg.verbose {
				level = slog.LevelDebug
			}
			svgscene.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log ignored elements")
	root.PersistentFlags().IntVar(&cfg.maxDepth, "max-depth", 0, "maximum element nesting (0 means no limit)")

	root.AddCommand(newDumpCmd(&cfg), newPNGCmd(&cfg), newPDFCmd(&cfg))
	return root
}

func newDumpCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.svg>",
		Short: "Print the scene tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := svgscene.ReadSceneFile(args[0], cfg.options())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), root.Dump())
			return err
		},
	}
}

const (
	backendRasterx = "rasterx"
	backendGG      = "gg"
)

func newPNGCmd(cfg *config) *cobra.Command {
	backend := backendRasterx
	cmd := &cobra.Command{
		Use:   "png <file.svg> <out.png>",
		Short: "Render the document to a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := svgscene.ReadSceneFile(args[0], cfg.options())
			if err != nil {
				return err
			}

			var img image.Image
			switch backend {
			case backendRasterx:
				img = svgraster.RasterSceneToImage(root)
			case backendGG:
				img, err = svggg.RenderSceneToImage(root)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown backend %q (expected %s or %s)", backend, backendRasterx, backendGG)
			}

			return writeFile(args[1], func(w io.Writer) error { return png.Encode(w, img) })
		},
	}
	cmd.Flags().StringVar(&backend, "backend", backendRasterx, "rasterizer to use: rasterx or gg")
	return cmd
}

func newPDFCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "pdf <file.svg> <out.pdf>",
		Short: "Render the document to a one page PDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := svgscene.ReadSceneFile(args[0], cfg.options())
			if err != nil {
				return err
			}
			return writeFile(args[1], func(w io.Writer) error { return svgpdf.RenderSceneToPDF(root, w) })
		},
	}
}

// writeFile creates `filename` and fills it with `write`
func writeFile(filename string, write func(w io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}
