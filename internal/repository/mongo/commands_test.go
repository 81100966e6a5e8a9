package mongo

import (
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// aggregateCommand is the part of an aggregate command the tests check.
type aggregateCommand struct {
	Collection string   `bson:"aggregate"`
	Pipeline   []bson.D `bson:"pipeline"`
}

// findAndModifyCommand is the part of a findAndModify command the tests check.
type findAndModifyCommand struct {
	Collection string `bson:"findAndModify"`
	Query      bson.M `bson:"query"`
	New        bool   `bson:"new"`
	Update     struct {
		Set bson.M `bson:"$set"`
	} `bson:"update"`
}

type insertCommand struct {
	Collection string   `bson:"insert"`
	Documents  []bson.M `bson:"documents"`
}

// sentCommand decodes the next command the client sent and checks its name.
func sentCommand(mt *mtest.T, name string, out interface{}) {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt, "no command was sent")
	require.Equal(mt, name, evt.CommandName)
	require.NoError(mt, bson.Unmarshal(evt.Command, out))
}
