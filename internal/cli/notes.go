package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/export"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

const previewRunes = 60

func newNotesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List, read and edit notes",
	}
	cmd.AddCommand(
		newNotesListCommand(rt),
		newNotesGetCommand(rt),
		newNotesCreateCommand(rt),
		newNotesUpdateCommand(rt),
		newNotesDeleteCommand(rt),
		newNotesBulkDeleteCommand(rt),
		newNotesCopyCommand(rt),
	)
	return cmd
}

func newNotesListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			notes, err := rt.services.NoteService.List(cmd.Context(), sess)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes yet")
				return nil
			}

			rows := make([][]string, 0, len(notes))
			for _, n := range notes {
				rows = append(rows, []string{
					n.ID,
					n.UpdatedAt.Format("2006-01-02 15:04"),
					truncate(n.Title, previewRunes),
					truncate(export.PlainText(n.Content), previewRunes),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "UPDATED", "TITLE", "CONTENT"}, rows))
			return nil
		},
	}
}

func newNotesGetCommand(rt *runtime) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			note, err := rt.services.NoteService.Get(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}

			content := note.Content
			if !raw {
				content = export.PlainText(content)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n%s\n", note.Title, note.UpdatedAt.Format("2006-01-02 15:04"), content)
			if note.ImageRef != nil && *note.ImageRef != "" {
				fmt.Fprintf(out, "\nimage: %s\n", *note.ImageRef)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "html", false, "print the content as stored HTML")
	return cmd
}

func newNotesCreateCommand(rt *runtime) *cobra.Command {
	var (
		input    models.NoteInput
		imageRef string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			if imageRef != "" {
				input.ImageRef = &imageRef
			}
			note, err := rt.services.NoteService.Create(cmd.Context(), sess, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Note %s created\n", note.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&input.Content, "content", "m", "", "note content (HTML or plain text)")
	cmd.Flags().StringVar(&imageRef, "image", "", "image URL")
	return cmd
}

func newNotesUpdateCommand(rt *runtime) *cobra.Command {
	var (
		title, content, imageRef string
		clearImage               bool
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.NoteUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("content") {
				update.Content = &content
			}
			if cmd.Flags().Changed("image") {
				update.ImageRef = &imageRef
			}
			update.ClearImage = clearImage
			if update.IsEmpty() {
				return errors.New("nothing to update, pass --title, --content, --image or --clear-image")
			}

			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			if err = rt.services.NoteService.Update(cmd.Context(), sess, args[0], update); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Note %s updated\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "m", "", "new content")
	cmd.Flags().StringVar(&imageRef, "image", "", "new image URL")
	cmd.Flags().BoolVar(&clearImage, "clear-image", false, "remove the image")
	return cmd
}

func newNotesDeleteCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note and its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			result, err := rt.services.NoteService.Delete(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Note %s deleted\n", result.NoteID)
			if result.AttachmentErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "! image was not removed: %v\n", result.AttachmentErr)
			}
			return nil
		},
	}
}

func newNotesBulkDeleteCommand(rt *runtime) *cobra.Command {
	var admin string
	cmd := &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several notes, skipping the ones that fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.confirmAdmin(admin); err != nil {
				return err
			}
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			result, err := rt.services.NoteService.BulkDelete(cmd.Context(), sess, args)
			if err != nil {
				return err
			}
			printBatch(cmd, "deleted", result)
			return nil
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin password, asked when empty")
	return cmd
}

func newNotesCopyCommand(rt *runtime) *cobra.Command {
	var title bool
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy the plain text of a note to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rt.session(cmd.Context())
			if err != nil {
				return err
			}
			note, err := rt.services.NoteService.Get(cmd.Context(), sess, args[0])
			if err != nil {
				return err
			}

			text := export.PlainText(note.Content)
			if title {
				text = note.Title
			}
			if err = rt.copyText(text); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Copied "+strconv.Itoa(len([]rune(text)))+" characters")
			return nil
		},
	}
	cmd.Flags().BoolVar(&title, "title", false, "copy the title instead of the content")
	return cmd
}

func printBatch(cmd *cobra.Command, verb string, result models.BatchResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %d of %d %s\n", result.Succeeded, result.Attempted, verb)
	for _, id := range result.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s failed\n", id)
	}
}
