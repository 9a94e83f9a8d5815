package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mrlokans/catalog/internal/client"
	"github.com/mrlokans/catalog/internal/schema"
)

var bookActions = []string{"list", "get", "create", "update", "delete"}

// BooksCommand manages books through the REST API of a running server.
type BooksCommand struct {
	apiFlags

	Action        string
	ID            uint
	Title         string
	AuthorID      uint
	Description   string
	PublishedYear int

	set map[string]bool
	out io.Writer
}

func NewBooksCommand() *BooksCommand {
	return &BooksCommand{out: os.Stdout}
}

// ParseFlags parses command line flags
func (cmd *BooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("books", flag.ContinueOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Title, "title", "", "Book title (create, update)")
	fs.UintVar(&cmd.AuthorID, "author-id", 0, "ID of the book's author (create, update)")
	fs.StringVar(&cmd.Description, "description", "", "Book description (create, update)")
	fs.IntVar(&cmd.PublishedYear, "year", 0, "Publication year (create, update)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books <list|get|create|update|delete> [options] [id]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage books through the catalog API.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s books list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s books create -title Roots -author-id 2 -description \"Family saga\" -year 1976\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s books update -year 1977 4\n", os.Args[0])
	}

	action, rest, err := splitAction(args, bookActions...)
	if err != nil {
		fs.Usage()
		return err
	}
	cmd.Action = action

	if err := fs.Parse(rest); err != nil {
		return err
	}
	cmd.set = setFlags(fs)

	switch action {
	case "get", "update", "delete":
		if cmd.ID, err = positionalID(fs); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the selected action
func (cmd *BooksCommand) Run() error {
	c := client.New(cmd.APIURL, client.WithAPIPrefix(cmd.APIPrefix))
	ctx, cancel := requestContext()
	defer cancel()

	switch cmd.Action {
	case "list":
		books, err := c.Books().List(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR")
		for _, b := range books {
			author := ""
			if b.Author != nil {
				author = b.Author.Name
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", b.ID, b.Title, author, b.PublishedYear)
		}
		return tw.Flush()

	case "get":
		book, err := c.Books().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		return printJSON(cmd.out, book)

	case "create":
		book, err := c.Books().Create(ctx, schema.CreateBookInput{
			Title:         cmd.Title,
			AuthorID:      cmd.AuthorID,
			Description:   cmd.Description,
			PublishedYear: cmd.PublishedYear,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.out, book)

	case "update":
		book, err := c.Books().Update(ctx, cmd.ID, cmd.patch())
		if err != nil {
			return err
		}
		return printJSON(cmd.out, book)

	case "delete":
		if err := c.Books().Delete(ctx, cmd.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.out, "Deleted book %d\n", cmd.ID)
		return nil
	}

	return fmt.Errorf("unknown action %q", cmd.Action)
}

// patch includes only the fields given on the command line.
func (cmd *BooksCommand) patch() schema.UpdateBookInput {
	var patch schema.UpdateBookInput
	if cmd.set["title"] {
		patch.Title = &cmd.Title
	}
	if cmd.set["author-id"] {
		patch.AuthorID = &cmd.AuthorID
	}
	if cmd.set["description"] {
		patch.Description = &cmd.Description
	}
	if cmd.set["year"] {
		patch.PublishedYear = &cmd.PublishedYear
	}
	return patch
}
