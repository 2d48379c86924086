// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-zk-vault/internal/generator"
	"github.com/MKhiriev/go-zk-vault/models"
)

// recordFlags binds the editable record fields to a command.
type recordFlags struct {
	title    string
	username string
	url      string
	notes    string
	folder   string
	tags     []string

	askPassword bool
	generate    bool
	length      int
}

func (f *recordFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.title, "title", "t", "", "Item title")
	fs.StringVarP(&f.username, "username", "u", "", "Username")
	fs.StringVar(&f.url, "url", "", "Website URL")
	fs.StringVar(&f.notes, "notes", "", "Free-form notes")
	fs.StringVar(&f.folder, "folder", "", "Folder")
	fs.StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable)")
	fs.BoolVarP(&f.askPassword, "password", "p", false, "Prompt for the item password")
	fs.BoolVarP(&f.generate, "generate", "g", false, "Generate the item password")
	fs.IntVar(&f.length, "length", generator.DefaultLength, "Generated password length")
}

// apply copies the flags that were set on the command line into r.
func (f *recordFlags) apply(fs *pflag.FlagSet, r *models.VaultRecord) {
	if fs.Changed("title") {
		r.Title = f.title
	}
	if fs.Changed("username") {
		r.Username = f.username
	}
	if fs.Changed("url") {
		r.URL = f.url
	}
	if fs.Changed("notes") {
		r.Notes = f.notes
	}
	if fs.Changed("folder") {
		r.Folder = f.folder
	}
	if fs.Changed("tag") {
		r.Tags = f.tags
	}
}

func (a *App) resolvePassword(f *recordFlags, r *models.VaultRecord) error {
	switch {
	case f.generate:
		opts := generator.DefaultOptions()
		opts.Length = f.length
		pwd, err := generator.Generate(opts)
		if err != nil {
			return err
		}
		r.Password = pwd
	case f.askPassword:
		pwd, err := a.prompter.Secret("Item password: ")
		if err != nil {
			return err
		}
		r.Password = pwd
	}
	return nil
}

func (a *App) newItemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage vault items",
	}
	cmd.AddCommand(
		a.newItemAddCommand(),
		a.newItemListCommand(),
		a.newItemGetCommand(),
		a.newItemEditCommand(),
		a.newItemRemoveCommand(),
	)
	return cmd
}

func (a *App) newItemAddCommand() *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var record models.VaultRecord
			flags.apply(cmd.Flags(), &record)
			if err := a.resolvePassword(&flags, &record); err != nil {
				return err
			}

			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				item, err := a.services.VaultService.Create(ctx, record)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, okStyle.Render("Created "+item.ID))
				return nil
			})
		},
	}
	flags.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func (a *App) newItemListCommand() *cobra.Command {
	var filter models.RecordFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				items, err := a.services.VaultService.List(ctx, filter)
				if err != nil {
					return err
				}
				fmt.Fprint(a.out, renderItems(items))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filter.Folder, "folder", "", "Only items in this folder")
	cmd.Flags().StringSliceVar(&filter.Tags, "tag", nil, "Only items carrying every given tag")
	cmd.Flags().BoolVar(&filter.OnlyTagged, "tagged", false, "Only items with at least one tag")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "Case-insensitive search over title, username, url and notes")
	return cmd
}

func (a *App) newItemGetCommand() *cobra.Command {
	var (
		show       bool
		copyPwd    bool
		clearAfter time.Duration
	)

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				item, err := a.services.VaultService.Get(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(a.out, renderItem(item, show))

				if !copyPwd || item.Record == nil || item.Record.Password == "" {
					return nil
				}
				if clearAfter > 0 {
					fmt.Fprintln(a.out, faintStyle.Render(fmt.Sprintf("Password copied, clearing in %s", clearAfter)))
				}
				return copyWithClear(ctx, a.clipboard, item.Record.Password, clearAfter)
			})
		},
	}

	cmd.Flags().BoolVarP(&show, "show", "s", false, "Print the password")
	cmd.Flags().BoolVar(&copyPwd, "copy", false, "Copy the password to the clipboard")
	cmd.Flags().DurationVar(&clearAfter, "clear-after", 30*time.Second, "Clear the clipboard after this long (0 keeps it)")
	return cmd
}

func (a *App) newItemEditCommand() *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				current, err := a.services.VaultService.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if current.Record == nil {
					return fmt.Errorf("item %s: %w", args[0], current.Err)
				}

				record := *current.Record
				flags.apply(cmd.Flags(), &record)
				if err = a.resolvePassword(&flags, &record); err != nil {
					return err
				}

				if _, err = a.services.VaultService.Update(ctx, args[0], record); err != nil {
					return err
				}
				fmt.Fprintln(a.out, okStyle.Render("Updated "+args[0]))
				return nil
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func (a *App) newItemRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(ctx context.Context) error {
				if err := a.services.VaultService.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, okStyle.Render("Deleted "+args[0]))
				return nil
			})
		},
	}
}
