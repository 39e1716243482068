package main

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	apiv1alpha1 "github.com/KirkDiggler/paranormal-api/internal/api/v1alpha1"
	"github.com/KirkDiggler/paranormal-api/internal/auth"
	"github.com/KirkDiggler/paranormal-api/internal/config"
	"github.com/KirkDiggler/paranormal-api/internal/testutils"
)

const (
	bufSize         = 1024 * 1024
	gameMasterToken = "mestre-secreto"
)

type ServerTestSuite struct {
	suite.Suite
	ctx        context.Context
	conn       *grpc.ClientConn
	characters apiv1alpha1.CharacterServiceClient
	dice       apiv1alpha1.DiceServiceClient
	catalog    apiv1alpha1.CatalogServiceClient
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()

	cfg, err := config.Load(config.New(), "")
	s.Require().NoError(err)
	cfg.Catalog.SeedDir = "../../data/catalog"
	cfg.Catalog.SeedOnStart = true
	hash, err := auth.HashToken(gameMasterToken)
	s.Require().NoError(err)
	cfg.Auth.GameMasterTokenHash = hash

	client, _ := testutils.CreateTestRedisClient(s.T())

	srv, _, err := buildServer(s.ctx, cfg, client)
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // returns when the test stops the server
	}()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = conn.Close()
	})

	s.conn = conn
	s.characters = apiv1alpha1.NewCharacterServiceClient(conn)
	s.dice = apiv1alpha1.NewDiceServiceClient(conn)
	s.catalog = apiv1alpha1.NewCatalogServiceClient(conn)
}

func (s *ServerTestSuite) gameMaster() context.Context {
	return metadata.AppendToOutgoingContext(s.ctx, "authorization", auth.Scheme+" "+gameMasterToken)
}

func (s *ServerTestSuite) createCharacter() *apiv1alpha1.Character {
	resp, err := s.characters.CreateCharacter(s.ctx, &apiv1alpha1.CreateCharacterRequest{
		PlayerId:  "player-1",
		Name:      "Arthur Cervero",
		Archetype: "Combatente",
		Attributes: map[string]int32{
			"FOR": 3,
			"AGI": 2,
			"INT": 1,
			"PRE": 2,
			"VIG": 2,
		},
		Skills: []string{"Luta", "Fortitude", "Atletismo", "Percepção"},
	})
	s.Require().NoError(err)
	return resp.Character
}

func (s *ServerTestSuite) TestHealth() {
	resp, err := grpc_health_v1.NewHealthClient(s.conn).Check(s.ctx, &grpc_health_v1.HealthCheckRequest{
		Service: apiv1alpha1.CharacterServiceName,
	})
	s.Require().NoError(err)
	s.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}

func (s *ServerTestSuite) TestSeededCatalog() {
	resp, err := s.catalog.ListEntries(s.ctx, &apiv1alpha1.ListEntriesRequest{Kind: "weapons"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Entries)

	got, err := s.catalog.GetEntry(s.ctx, &apiv1alpha1.GetEntryRequest{Kind: "weapons", Name: "Faca"})
	s.Require().NoError(err)
	s.Equal("Faca", got.Entry.Name)
	s.Contains(string(got.Entry.Entry), "1d4")
}

func (s *ServerTestSuite) TestCreateCharacter() {
	char := s.createCharacter()
	s.NotEmpty(char.Id)
	s.Equal("Combatente", char.Archetype)
	s.Equal(char.Health.Max, char.Health.Current)

	got, err := s.characters.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{CharacterId: char.Id})
	s.Require().NoError(err)
	s.Equal(char.Name, got.Character.Name)
}

func (s *ServerTestSuite) TestAttackWithCarriedWeapon() {
	char := s.createCharacter()

	added, err := s.characters.AddItem(s.ctx, &apiv1alpha1.AddItemRequest{
		CharacterId: char.Id,
		Item:        &apiv1alpha1.InventoryItem{Name: "Faca"},
		FromCatalog: "weapons",
	})
	s.Require().NoError(err)
	s.Require().Len(added.Character.Inventory, 1)
	s.Equal(int32(1), added.Character.SpaceUsed)

	attack, err := s.dice.RollAttack(s.ctx, &apiv1alpha1.RollAttackRequest{
		CharacterId: char.Id,
		Weapon:      "Faca",
	})
	s.Require().NoError(err)
	s.Equal("Faca", attack.Weapon)
	s.Equal("Luta", attack.Skill)
	s.Require().NotNil(attack.Damage)
	s.GreaterOrEqual(attack.Damage.Total, int32(1))

	session, err := s.dice.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{EntityId: char.Id})
	s.Require().NoError(err)
	s.Len(session.Session.Rolls, 2)
}

func (s *ServerTestSuite) TestGameMasterMethodsNeedToken() {
	_, err := s.catalog.SeedCatalog(s.ctx, &apiv1alpha1.SeedCatalogRequest{})
	s.Require().Error(err)
	s.Equal(codes.Unauthenticated, status.Code(err))

	resp, err := s.catalog.SeedCatalog(s.gameMaster(), &apiv1alpha1.SeedCatalogRequest{Replace: true})
	s.Require().NoError(err)
	s.Len(resp.Counts, 8)
}

func (s *ServerTestSuite) TestUnknownCharacter() {
	_, err := s.characters.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{CharacterId: "char-missing"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
