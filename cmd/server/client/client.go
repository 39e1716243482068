// Package client provides test commands for the Paranormal API gRPC services
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/auth"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	jsonOutput bool
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Paranormal API",
	Long:  `Client commands allow you to test the Paranormal API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "Game-master token for gated methods")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print responses as JSON")

	ClientCmd.AddCommand(characterCmd)
	ClientCmd.AddCommand(diceCmd)
	ClientCmd.AddCommand(catalogCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// requestContext bounds a call by the timeout flag and attaches the token
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", auth.Scheme+" "+token)
	}
	return ctx, cancel
}

func withConnection[C any](newClient func(grpc.ClientConnInterface) C) (C, func(), error) {
	var zero C
	conn, err := createConnection()
	if err != nil {
		return zero, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return newClient(conn), cleanup, nil
}

func createCharacterClient() (apiv1alpha1.CharacterServiceClient, func(), error) {
	return withConnection(apiv1alpha1.NewCharacterServiceClient)
}

func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	return withConnection(apiv1alpha1.NewDiceServiceClient)
}

func createCatalogClient() (apiv1alpha1.CatalogServiceClient, func(), error) {
	return withConnection(apiv1alpha1.NewCatalogServiceClient)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
