package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jabbaspizza/accounts/internal/common"
	pb "github.com/jabbaspizza/accounts/internal/proto"
	"github.com/jabbaspizza/accounts/internal/server/auth"
	"github.com/jabbaspizza/accounts/internal/server/models"
	"github.com/jabbaspizza/accounts/internal/server/validation"
)

func accountToProto(a *models.Account) *pb.Account {
	return &pb.Account{
		AccountId:  a.ID,
		Email:      a.Email,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		IsActive:   a.IsActive,
		IsVerified: a.IsVerified,
	}
}

func (s *GRPCServer) issueToken(a *models.Account) (string, error) {
	return auth.GenerateToken(a.Email, a.FirstName, a.LastName, s.jwtSecret)
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {

	if err := validation.CheckRequired(req, "email", "first_name", "last_name", "hashed_password"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	account, err := s.accounts.Create(ctx, req.Email, req.FirstName, req.LastName, req.HashedPassword)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, status.Error(codes.AlreadyExists, "Email already exists")
		}
		return nil, status.Error(codes.Internal, "Failed to create account")
	}

	token, err := s.issueToken(account)
	if err != nil {
		s.logger.Error(ctx, "Failed to sign token", "error", err.Error())
		return nil, status.Error(codes.Internal, "Failed to create account")
	}

	s.logger.Info(ctx, "Account created", "account_id", account.ID, "email", account.Email)
	return &pb.CreateAccountResponse{Account: accountToProto(account), Token: token}, nil

}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {

	if err := validation.CheckRequired(req, "email"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, status.Error(codes.Internal, "Failed to fetch account")
	}
	if account == nil {
		return nil, status.Error(codes.NotFound, "Account not found")
	}

	token, err := s.issueToken(account)
	if err != nil {
		s.logger.Error(ctx, "Failed to sign token", "error", err.Error())
		return nil, status.Error(codes.Internal, "Failed to fetch account")
	}

	return &pb.GetAccountResponse{Account: accountToProto(account), Token: token}, nil

}

func (s *GRPCServer) UpdateAccount(ctx context.Context, req *pb.UpdateAccountRequest) (*pb.UpdateAccountResponse, error) {

	if err := validation.CheckRequired(req, "account_id", "email", "first_name", "last_name", "hashed_password"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	account, err := s.accounts.Update(ctx, req.AccountId, req.Email, req.FirstName, req.LastName, req.HashedPassword)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "Account not found")
		}
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return nil, status.Error(codes.AlreadyExists, "Email already exists")
		}
		return nil, status.Error(codes.Internal, "Failed to update account")
	}
	if account == nil {
		// the repository promised an updated row; treat a missing one as a bug
		return nil, status.Error(codes.Internal, "Failed to update account")
	}

	return &pb.UpdateAccountResponse{Account: accountToProto(account)}, nil

}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.DeleteAccountResponse, error) {

	if err := validation.CheckRequired(req, "account_id"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := s.accounts.Delete(ctx, req.AccountId); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "Account not found")
		}
		return nil, status.Error(codes.Internal, "Failed to delete account")
	}

	s.logger.Info(ctx, "Account deleted", "account_id", req.AccountId)
	return &pb.DeleteAccountResponse{Success: true}, nil

}
