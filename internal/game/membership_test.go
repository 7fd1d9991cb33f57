package game

import (
	"sync"
	"testing"

	"equarior/backend/internal/database"
	"equarior/backend/internal/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MembershipTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (suite *MembershipTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	// In-memory sqlite gives every pooled connection its own database;
	// pin the pool to a single connection.
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(db))
	suite.db = db
}

func (suite *MembershipTestSuite) TearDownTest() {
	sqlDB, _ := suite.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

func (suite *MembershipTestSuite) TestCreate() {
	g, err := Create(suite.db, models.PlayerList{3, 1, 2})
	suite.Require().NoError(err)
	suite.Equal(models.PlayerList{3, 1, 2}, g.PlayerIDs)

	var reloaded models.Game
	suite.Require().NoError(suite.db.First(&reloaded, g.ID).Error)
	suite.Equal(models.PlayerList{3, 1, 2}, reloaded.PlayerIDs)
}

func (suite *MembershipTestSuite) TestCreateEmptyRoster() {
	g, err := Create(suite.db, nil)
	suite.Require().NoError(err)
	suite.Empty(g.PlayerIDs)
}

func (suite *MembershipTestSuite) TestCreateRejectsDuplicates() {
	_, err := Create(suite.db, models.PlayerList{1, 2, 1})
	suite.ErrorIs(err, ErrDuplicatePlayers)
}

func (suite *MembershipTestSuite) TestCreateWithPlayer() {
	g, err := CreateWithPlayer(suite.db, 9)
	suite.Require().NoError(err)
	suite.Equal(models.PlayerList{9}, g.PlayerIDs)
}

func (suite *MembershipTestSuite) TestJoinAppendsPreservingOrder() {
	g, err := Create(suite.db, models.PlayerList{5, 3})
	suite.Require().NoError(err)

	joined, err := Join(suite.db, g.ID, 8)
	suite.Require().NoError(err)
	suite.Equal(models.PlayerList{5, 3, 8}, joined.PlayerIDs)

	var reloaded models.Game
	suite.Require().NoError(suite.db.First(&reloaded, g.ID).Error)
	suite.Equal(models.PlayerList{5, 3, 8}, reloaded.PlayerIDs)
}

func (suite *MembershipTestSuite) TestDuplicateJoinRejected() {
	g, err := Create(suite.db, nil)
	suite.Require().NoError(err)

	first, err := Join(suite.db, g.ID, 1)
	suite.Require().NoError(err)
	suite.Equal(models.PlayerList{1}, first.PlayerIDs)

	_, err = Join(suite.db, g.ID, 1)
	suite.ErrorIs(err, ErrAlreadyJoined)

	// The rejected join must not have touched the roster.
	var reloaded models.Game
	suite.Require().NoError(suite.db.First(&reloaded, g.ID).Error)
	suite.Equal(models.PlayerList{1}, reloaded.PlayerIDs)
}

func (suite *MembershipTestSuite) TestJoinUnknownGame() {
	_, err := Join(suite.db, 9999, 1)
	suite.ErrorIs(err, ErrGameNotFound)
}

func (suite *MembershipTestSuite) TestConcurrentJoinsAllLand() {
	g, err := Create(suite.db, nil)
	suite.Require().NoError(err)

	const players = 6
	var wg sync.WaitGroup
	errs := make([]error, players)

	for i := 0; i < players; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = Join(suite.db, g.ID, int64(i+1))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		suite.NoErrorf(err, "join %d failed", i+1)
	}

	var reloaded models.Game
	suite.Require().NoError(suite.db.First(&reloaded, g.ID).Error)
	suite.Len(reloaded.PlayerIDs, players)
	for i := 1; i <= players; i++ {
		suite.True(reloaded.PlayerIDs.Contains(int64(i)), "player %d missing from roster", i)
	}
}

// TestLostUpdateWithoutVersionGuard documents the race the version column
// exists to prevent: two writers that read the same roster and write back
// unconditionally overwrite each other, losing a player.
func (suite *MembershipTestSuite) TestLostUpdateWithoutVersionGuard() {
	g, err := Create(suite.db, nil)
	suite.Require().NoError(err)

	var a, b models.Game
	suite.Require().NoError(suite.db.First(&a, g.ID).Error)
	suite.Require().NoError(suite.db.First(&b, g.ID).Error)

	naiveWrite := func(snapshot models.Game, playerID int64) {
		roster := append(models.PlayerList{}, snapshot.PlayerIDs...)
		roster = append(roster, playerID)
		err := suite.db.Model(&models.Game{}).
			Where("id = ?", snapshot.ID).
			Update("ids_players", roster).Error
		suite.Require().NoError(err)
	}

	naiveWrite(a, 1)
	naiveWrite(b, 2)

	var reloaded models.Game
	suite.Require().NoError(suite.db.First(&reloaded, g.ID).Error)
	suite.Equal(models.PlayerList{2}, reloaded.PlayerIDs, "the second unconditional write should have clobbered the first")
}

func TestMembershipSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}
