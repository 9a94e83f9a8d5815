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

var authorActions = []string{"list", "get", "create", "update", "delete"}

// AuthorsCommand manages authors through the REST API of a running server.
type AuthorsCommand struct {
	apiFlags

	Action string
	ID     uint
	Name   string
	Bio    string

	set map[string]bool
	out io.Writer
}

func NewAuthorsCommand() *AuthorsCommand {
	return &AuthorsCommand{out: os.Stdout}
}

// ParseFlags parses command line flags
func (cmd *AuthorsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("authors", flag.ContinueOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Name, "name", "", "Author name (create, update)")
	fs.StringVar(&cmd.Bio, "bio", "", "Author biography (create, update)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s authors <list|get|create|update|delete> [options] [id]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Manage authors through the catalog API.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s authors list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s authors create -name \"Alex Haley\" -bio \"American writer\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s authors update -bio \"Author of Roots\" 2\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s authors delete 2\n", os.Args[0])
	}

	action, rest, err := splitAction(args, authorActions...)
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
func (cmd *AuthorsCommand) Run() error {
	c := client.New(cmd.APIURL, client.WithAPIPrefix(cmd.APIPrefix))
	ctx, cancel := requestContext()
	defer cancel()

	switch cmd.Action {
	case "list":
		authors, err := c.Authors().List(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tBOOKS")
		for _, a := range authors {
			fmt.Fprintf(tw, "%d\t%s\t%d\n", a.ID, a.Name, len(a.Books))
		}
		return tw.Flush()

	case "get":
		author, err := c.Authors().Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		return printJSON(cmd.out, author)

	case "create":
		author, err := c.Authors().Create(ctx, schema.CreateAuthorInput{Name: cmd.Name, Bio: cmd.Bio})
		if err != nil {
			return err
		}
		return printJSON(cmd.out, author)

	case "update":
		var patch schema.UpdateAuthorInput
		if cmd.set["name"] {
			patch.Name = &cmd.Name
		}
		if cmd.set["bio"] {
			patch.Bio = &cmd.Bio
		}
		author, err := c.Authors().Update(ctx, cmd.ID, patch)
		if err != nil {
			return err
		}
		return printJSON(cmd.out, author)

	case "delete":
		if err := c.Authors().Delete(ctx, cmd.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.out, "Deleted author %d\n", cmd.ID)
		return nil
	}

	return fmt.Errorf("unknown action %q", cmd.Action)
}
