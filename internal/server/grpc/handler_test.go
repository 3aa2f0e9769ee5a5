package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jabbaspizza/accounts/internal/common"
	"github.com/jabbaspizza/accounts/internal/logging"
	pb "github.com/jabbaspizza/accounts/internal/proto"
	"github.com/jabbaspizza/accounts/internal/server/auth"
	"github.com/jabbaspizza/accounts/internal/server/models"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeAccounts struct {
	createResp *models.Account
	createErr  error

	getResp *models.Account
	getErr  error

	updateResp *models.Account
	updateErr  error

	deleteErr error
}

func (f *fakeAccounts) Create(ctx context.Context, email, firstName, lastName, hashedPassword string) (*models.Account, error) {
	return f.createResp, f.createErr
}
func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return f.getResp, f.getErr
}
func (f *fakeAccounts) Update(ctx context.Context, id int64, email, firstName, lastName, hashedPassword string) (*models.Account, error) {
	return f.updateResp, f.updateErr
}
func (f *fakeAccounts) Delete(ctx context.Context, id int64) error { return f.deleteErr }

// ---- helpers ----

func newServer(a accountService) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		accounts:  a,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func validCreateReq() *pb.CreateAccountRequest {
	return &pb.CreateAccountRequest{
		Email:          "han@jabbaspizza.com",
		FirstName:      "Han",
		LastName:       "Solo",
		HashedPassword: "hashed",
	}
}

// ---- tests ----

func TestCreateAccount_OK(t *testing.T) {
	a := &fakeAccounts{createResp: &models.Account{
		ID: 1, Email: "han@jabbaspizza.com", FirstName: "Han", LastName: "Solo", IsActive: true,
	}}
	s := newServer(a)

	resp, err := s.CreateAccount(context.Background(), validCreateReq())
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if resp.GetAccount().GetAccountId() != 1 || resp.GetAccount().GetEmail() != "han@jabbaspizza.com" {
		t.Fatalf("unexpected account: %+v", resp.GetAccount())
	}
	if !resp.GetAccount().GetIsActive() {
		t.Fatal("expected active account")
	}

	claims, err := auth.ParseToken(resp.GetToken(), []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Email != "han@jabbaspizza.com" || claims.FirstName != "Han" || claims.LastName != "Solo" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestCreateAccount_MissingField(t *testing.T) {
	s := newServer(&fakeAccounts{})

	req := validCreateReq()
	req.FirstName = ""

	_, err := s.CreateAccount(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "First Name is required" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	s := newServer(&fakeAccounts{createErr: common.ErrorDuplicateEmail})

	_, err := s.CreateAccount(context.Background(), validCreateReq())
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "Email already exists" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestCreateAccount_InternalOnStorageError(t *testing.T) {
	s := newServer(&fakeAccounts{createErr: errors.New("db down")})

	_, err := s.CreateAccount(context.Background(), validCreateReq())
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestGetAccount_OK(t *testing.T) {
	a := &fakeAccounts{getResp: &models.Account{
		ID: 5, Email: "leia@jabbaspizza.com", FirstName: "Leia", LastName: "Organa",
	}}
	s := newServer(a)

	resp, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{Email: "leia@jabbaspizza.com"})
	if err != nil {
		t.Fatalf("GetAccount error: %v", err)
	}
	if resp.GetAccount().GetAccountId() != 5 {
		t.Fatalf("unexpected account: %+v", resp.GetAccount())
	}

	claims, err := auth.ParseToken(resp.GetToken(), []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Email != "leia@jabbaspizza.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestGetAccount_MissingEmail(t *testing.T) {
	s := newServer(&fakeAccounts{})

	_, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "Email is required" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	// the service reports absence as a nil account, not an error
	s := newServer(&fakeAccounts{})

	_, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{Email: "ghost@jabbaspizza.com"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "Account not found" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestGetAccount_InternalOnStorageError(t *testing.T) {
	s := newServer(&fakeAccounts{getErr: errors.New("db down")})

	_, err := s.GetAccount(context.Background(), &pb.GetAccountRequest{Email: "x@y.com"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestUpdateAccount_OK(t *testing.T) {
	a := &fakeAccounts{updateResp: &models.Account{
		ID: 7, Email: "new@jabbaspizza.com", FirstName: "N", LastName: "E", IsVerified: true,
	}}
	s := newServer(a)

	resp, err := s.UpdateAccount(context.Background(), &pb.UpdateAccountRequest{
		AccountId: 7, Email: "new@jabbaspizza.com", FirstName: "N", LastName: "E", HashedPassword: "h",
	})
	if err != nil {
		t.Fatalf("UpdateAccount error: %v", err)
	}
	if resp.GetAccount().GetEmail() != "new@jabbaspizza.com" || !resp.GetAccount().GetIsVerified() {
		t.Fatalf("unexpected account: %+v", resp.GetAccount())
	}
}

func TestUpdateAccount_MissingAccountId(t *testing.T) {
	s := newServer(&fakeAccounts{})

	_, err := s.UpdateAccount(context.Background(), &pb.UpdateAccountRequest{
		Email: "x@y.com", FirstName: "A", LastName: "B", HashedPassword: "h",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "Account Id is required" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestUpdateAccount_ErrorMapping(t *testing.T) {
	req := &pb.UpdateAccountRequest{
		AccountId: 7, Email: "x@y.com", FirstName: "A", LastName: "B", HashedPassword: "h",
	}

	s := newServer(&fakeAccounts{updateErr: common.ErrorNotFound})
	_, err := s.UpdateAccount(context.Background(), req)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}

	s2 := newServer(&fakeAccounts{updateErr: common.ErrorDuplicateEmail})
	_, err = s2.UpdateAccount(context.Background(), req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}

	s3 := newServer(&fakeAccounts{updateErr: errors.New("db down")})
	_, err = s3.UpdateAccount(context.Background(), req)
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestUpdateAccount_InternalOnNilAccount(t *testing.T) {
	// no error and no account is a contract violation downstream
	s := newServer(&fakeAccounts{})

	_, err := s.UpdateAccount(context.Background(), &pb.UpdateAccountRequest{
		AccountId: 7, Email: "x@y.com", FirstName: "A", LastName: "B", HashedPassword: "h",
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "Failed to update account" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestDeleteAccount_OK(t *testing.T) {
	s := newServer(&fakeAccounts{})

	resp, err := s.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{AccountId: 7})
	if err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}
	if !resp.GetSuccess() {
		t.Fatal("expected success=true")
	}
}

func TestDeleteAccount_MissingAccountId(t *testing.T) {
	s := newServer(&fakeAccounts{})

	_, err := s.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}
}

func TestDeleteAccount_ErrorMapping(t *testing.T) {
	s := newServer(&fakeAccounts{deleteErr: common.ErrorNotFound})
	_, err := s.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{AccountId: 404})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}

	s2 := newServer(&fakeAccounts{deleteErr: errors.New("db down")})
	_, err = s2.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{AccountId: 404})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}
