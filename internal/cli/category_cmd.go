package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stint/internal/cli/formatter"
	"github.com/alexanderramin/stint/internal/domain"
	"github.com/alexanderramin/stint/internal/repository"
	"github.com/alexanderramin/stint/internal/service"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Manage session categories",
	}

	cmd.AddCommand(
		newCategoryAddCmd(app),
		newCategoryListCmd(app),
		newCategoryRenameCmd(app),
		newCategoryRecolorCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(colorFlag)
			if err != nil {
				return err
			}

			c, err := app.Categories.Create(context.Background(), app.Workspace, args[0], color)
			if errors.Is(err, service.ErrCategoryNameRequired) {
				return fmt.Errorf("category name cannot be empty")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n",
				formatter.CategoryDot(c), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&colorFlag, "color", string(domain.DefaultCategoryColor), "Color token (red, blue, green, yellow, orange, purple, pink, indigo, cyan, gray)")

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Categories.List(context.Background(), app.Workspace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(cats) == 0 {
				fmt.Fprintln(out, formatter.Dim("No categories yet. Create one with 'stint category add'."))
				return nil
			}

			rows := make([][]string, 0, len(cats))
			for i := range cats {
				rows = append(rows, []string{
					formatter.TruncID(cats[i].ID),
					formatter.CategoryDot(&cats[i]),
					strings.ToLower(string(cats[i].Color)),
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"ID", "Name", "Color"}, rows))
			return nil
		},
	}
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Categories.Rename(context.Background(), args[0], args[1])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no category with ID '%s'", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed category to %s\n", formatter.Bold(args[1]))
			return nil
		},
	}
}

func newCategoryRecolorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recolor ID COLOR",
		Short: "Change a category's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := parseColor(args[1])
			if err != nil {
				return err
			}
			err = app.Categories.Recolor(context.Background(), args[0], color)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no category with ID '%s'", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recolored category to %s\n",
				formatter.CategoryStyle(color).Render(strings.ToLower(string(color))))
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a category, detaching its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Categories.Delete(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no category with ID '%s'", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category removed. Its sessions are now uncategorized.")
			return nil
		},
	}
}

func parseColor(s string) (domain.CategoryColor, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if parsed := domain.ParseCategoryColor(upper); string(parsed) == upper {
		return parsed, nil
	}
	return "", fmt.Errorf("invalid color '%s'", s)
}
