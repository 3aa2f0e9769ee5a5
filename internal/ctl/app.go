// Package ctl implements the accountsctl admin tool: small subcommands that
// call the accounts gRPC service over TLS from the operator's terminal.
package ctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	pb "github.com/jabbaspizza/accounts/internal/proto"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

type App struct {
	client  pb.AccountServiceClient
	out     io.Writer
	timeout time.Duration
}

func NewApp(client pb.AccountServiceClient, out io.Writer, timeout time.Duration) *App {
	return &App{client: client, out: out, timeout: timeout}
}

// Run dispatches on the first argument: create, get, update or delete.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: accountsctl <create|get|update|delete> [flags]")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	switch args[0] {
	case "create":
		return a.create(ctx, args[1:])
	case "get":
		return a.get(ctx, args[1:])
	case "update":
		return a.update(ctx, args[1:])
	case "delete":
		return a.delete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) promptPasswordHash() (string, error) {
	fmt.Fprint(a.out, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *App) printAccount(acc *pb.Account) {
	fmt.Fprintf(a.out, "id=%d email=%s first_name=%s last_name=%s active=%t verified=%t\n",
		acc.GetAccountId(), acc.GetEmail(), acc.GetFirstName(), acc.GetLastName(),
		acc.GetIsActive(), acc.GetIsVerified())
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hash, err := a.promptPasswordHash()
	if err != nil {
		return err
	}

	resp, err := a.client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Email:          *email,
		FirstName:      *firstName,
		LastName:       *lastName,
		HashedPassword: hash,
	})
	if err != nil {
		return err
	}

	a.printAccount(resp.GetAccount())
	fmt.Fprintf(a.out, "token=%s\n", resp.GetToken())
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.GetAccount(ctx, &pb.GetAccountRequest{Email: *email})
	if err != nil {
		return err
	}

	a.printAccount(resp.GetAccount())
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "account id")
	email := fs.String("email", "", "account email")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hash, err := a.promptPasswordHash()
	if err != nil {
		return err
	}

	resp, err := a.client.UpdateAccount(ctx, &pb.UpdateAccountRequest{
		AccountId:      *id,
		Email:          *email,
		FirstName:      *firstName,
		LastName:       *lastName,
		HashedPassword: hash,
	})
	if err != nil {
		return err
	}

	a.printAccount(resp.GetAccount())
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "account id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{AccountId: *id})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted=%t\n", resp.GetSuccess())
	return nil
}
