package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// requestLoggingInterceptor tags every call with a request id and logs the
// method on the way in and the outcome on the way out.
func (s *GRPCServer) requestLoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	log := s.logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

	log.Info(ctx, "Received request")

	resp, err := handler(ctx, req)

	if err != nil {
		log.Warn(ctx, "Request failed", "error", err.Error())
		return resp, err
	}

	log.Info(ctx, "Request completed")
	return resp, nil
}
