// Package web is the HTTP front door for Jabba's Pizza. It serves the
// greeting endpoint and proxies registration and login to the accounts gRPC
// service over TLS.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jabbaspizza/accounts/internal/logging"
	pb "github.com/jabbaspizza/accounts/internal/proto"
)

type Handler struct {
	client  pb.AccountServiceClient
	logger  logging.Logger
	timeout time.Duration
}

func NewHandler(client pb.AccountServiceClient, logger logging.Logger, timeout time.Duration) *Handler {
	return &Handler{
		client:  client,
		logger:  logger.With("module", "web"),
		timeout: timeout,
	}
}

// NewRouter builds the gin engine with all front door routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/home", h.Home)
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)

	return r
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AccountResponse struct {
	AccountID  int64  `json:"account_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

func accountResponse(a *pb.Account) AccountResponse {
	return AccountResponse{
		AccountID:  a.GetAccountId(),
		Email:      a.GetEmail(),
		FirstName:  a.GetFirstName(),
		LastName:   a.GetLastName(),
		IsActive:   a.GetIsActive(),
		IsVerified: a.GetIsVerified(),
	}
}

func (h *Handler) Home(c *gin.Context) {
	h.logger.Info(c.Request.Context(), "Home endpoint called")
	c.JSON(http.StatusOK, gin.H{"message": "Hello, in Jabba pizza"})
}

func (h *Handler) Register(c *gin.Context) {

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp, err := h.client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: string(hash),
	})
	if err != nil {
		switch status.Code(err) {
		case codes.AlreadyExists:
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		case codes.InvalidArgument:
			c.JSON(http.StatusBadRequest, gin.H{"error": status.Convert(err).Message()})
		default:
			h.logger.Error(ctx, "Account service call failed", "method", "CreateAccount", "error", err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "Account service unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": accountResponse(resp.GetAccount()),
		"token":   resp.GetToken(),
	})
}

func (h *Handler) Login(c *gin.Context) {

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	// The account service never hands out the stored hash, so the password
	// check stays on its side of the wire; an unknown email is reported the
	// same way as a bad password.
	resp, err := h.client.GetAccount(ctx, &pb.GetAccountRequest{Email: req.Email})
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case codes.InvalidArgument:
			c.JSON(http.StatusBadRequest, gin.H{"error": status.Convert(err).Message()})
		default:
			h.logger.Error(ctx, "Account service call failed", "method", "GetAccount", "error", err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "Account service unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": accountResponse(resp.GetAccount()),
		"token":   resp.GetToken(),
	})
}
