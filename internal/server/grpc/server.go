package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/jabbaspizza/accounts/internal/logging"
	pb "github.com/jabbaspizza/accounts/internal/proto"
	"github.com/jabbaspizza/accounts/internal/server/models"
)

// accountService is the slice of the service layer the transport needs.
type accountService interface {
	Create(ctx context.Context, email, firstName, lastName, hashedPassword string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, id int64, email, firstName, lastName, hashedPassword string) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address   string
	accounts  accountService
	logger    logging.Logger
	creds     credentials.TransportCredentials
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc accountService, creds credentials.TransportCredentials, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  svc,
		creds:     creds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.Creds(s.creds),
		grpc.ChainUnaryInterceptor(s.requestLoggingInterceptor),
	)

	// registers service
	pb.RegisterAccountServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
