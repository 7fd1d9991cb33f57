package handler

import (
	"net/http"
	"testing"

	"equarior/backend/internal/database"
	"equarior/backend/internal/models"

	"github.com/stretchr/testify/suite"
)

type RoundHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *RoundHandlerTestSuite) createGame(token string) models.Game {
	w := suite.do(http.MethodPost, "/game", token, GameInput{})
	suite.Require().Equal(http.StatusOK, w.Code)
	var g models.Game
	suite.decode(w, &g)
	return g
}

func (suite *RoundHandlerTestSuite) TestCreateAndGet() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")
	g := suite.createGame(token)

	w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: g.ID, Data: "opening moves"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var round models.Round
	suite.decode(w, &round)
	suite.Equal(g.ID, round.GameID)
	suite.Equal("opening moves", round.Data)

	w = suite.do(http.MethodGet, "/round/"+itoa(round.ID), token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
}

func (suite *RoundHandlerTestSuite) TestCreateForUnknownGame() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")

	w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: 9999, Data: "x"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoundHandlerTestSuite) TestListByGame() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")
	g1 := suite.createGame(token)
	g2 := suite.createGame(token)

	for _, data := range []string{"r1", "r2"} {
		w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: g1.ID, Data: data})
		suite.Require().Equal(http.StatusOK, w.Code)
	}
	w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: g2.ID, Data: "other"})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/round/game/"+itoa(g1.ID), token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var rounds []models.Round
	suite.decode(w, &rounds)
	suite.Len(rounds, 2)

	w = suite.do(http.MethodGet, "/round", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &rounds)
	suite.Len(rounds, 3)
}

func (suite *RoundHandlerTestSuite) TestReplaceData() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")
	g := suite.createGame(token)

	w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: g.ID, Data: "before"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var round models.Round
	suite.decode(w, &round)

	w = suite.do(http.MethodPatch, "/round/"+itoa(round.ID), token, UpdateRoundInput{Data: "after"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var reloaded models.Round
	suite.Require().NoError(database.DB.First(&reloaded, round.ID).Error)
	suite.Equal("after", reloaded.Data)
}

// TestDeleteTargetsRounds pins the delete to the rounds table; users must
// be untouched.
func (suite *RoundHandlerTestSuite) TestDeleteTargetsRounds() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")
	g := suite.createGame(token)

	w := suite.do(http.MethodPost, "/round", token, RoundInput{GameID: g.ID, Data: "x"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var round models.Round
	suite.decode(w, &round)

	w = suite.do(http.MethodDelete, "/round/"+itoa(round.ID), token, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/round/"+itoa(round.ID), token, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	var userCount int64
	suite.Require().NoError(database.DB.Model(&models.User{}).Count(&userCount).Error)
	suite.Equal(int64(1), userCount)
}

func (suite *RoundHandlerTestSuite) TestDeleteUnknownRound() {
	_, token := suite.registerAndLogin("alice", "a@x.com", "pw1")

	w := suite.do(http.MethodDelete, "/round/9999", token, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestRoundHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoundHandlerTestSuite))
}
