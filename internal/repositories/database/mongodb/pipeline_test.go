package mongodb

import (
	"testing"

	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stageName returns the operator of a single-key pipeline stage.
func stageName(stage bson.D) string {
	if len(stage) == 0 {
		return ""
	}
	return stage[0].Key
}

func stageNames(pipeline mongo.Pipeline) []string {
	names := make([]string, len(pipeline))
	for i, stage := range pipeline {
		names[i] = stageName(stage)
	}
	return names
}

func TestSalariesByDeptPipeline(t *testing.T) {
	pipeline := salariesByDeptPipeline()

	require.Equal(t, []string{"$group", "$sort"}, stageNames(pipeline))

	group := pipeline[0][0].Value.(bson.D)
	assert.Equal(t, "$dept_name", group[0].Value)

	sort := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "total_salaries", Value: -1}}, sort)
}

func TestActiveClientsPipeline_DefaultFilter(t *testing.T) {
	pipeline := activeClientsPipeline(domain.ClientFilter{MinAccountLimit: domain.DefaultAccountLimitThreshold})

	require.Equal(t, []string{"$lookup", "$unwind", "$match", "$project"}, stageNames(pipeline))

	// no active key, only the account limit floor
	criteria := pipeline[2][0].Value.(bson.D)
	require.Len(t, criteria, 1)
	assert.Equal(t, "account.limit", criteria[0].Key)
	assert.Equal(t, bson.D{{Key: "$gte", Value: int64(10000)}}, criteria[0].Value)
}

func TestActiveClientsPipeline_WithActiveFlag(t *testing.T) {
	active := true
	pipeline := activeClientsPipeline(domain.ClientFilter{Active: &active, MinAccountLimit: 20000})

	criteria := pipeline[2][0].Value.(bson.D)
	require.Len(t, criteria, 2)
	assert.Equal(t, bson.E{Key: "active", Value: true}, criteria[0])
	assert.Equal(t, "account.limit", criteria[1].Key)
	assert.Equal(t, bson.D{{Key: "$gte", Value: int64(20000)}}, criteria[1].Value)
}

func TestActiveClientsPipeline_ProjectsAccountFields(t *testing.T) {
	pipeline := activeClientsPipeline(domain.ClientFilter{MinAccountLimit: 10000})

	project := pipeline[3][0].Value.(bson.D)
	fields := map[string]interface{}{}
	for _, e := range project {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "$account.account_id", fields["cuenta"])
	assert.Equal(t, "$account.limit", fields["limite"])
}

func TestClientsByProductPipeline_CountsDistinctCustomers(t *testing.T) {
	pipeline := clientsByProductPipeline()

	require.Equal(t, []string{"$lookup", "$unwind", "$unwind", "$group", "$project"}, stageNames(pipeline))

	// group accumulates the customer ids into a set
	group := pipeline[3][0].Value.(bson.D)
	assert.Equal(t, "$account.products", group[0].Value)
	assert.Equal(t, bson.D{{Key: "$addToSet", Value: "$_id"}}, group[1].Value)

	// project sizes the set
	project := pipeline[4][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "$size", Value: "$total_clientes"}}, project[2].Value)
}

func TestTopAccountsPipeline(t *testing.T) {
	pipeline := topAccountsPipeline(3)

	require.Equal(t, []string{"$unwind", "$addFields", "$group", "$sort", "$limit", "$project"}, stageNames(pipeline))

	// totals are coerced to double before summing
	addFields := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "$toDouble", Value: "$transactions.total"}}, addFields[0].Value)

	assert.Equal(t, 3, pipeline[4][0].Value)
}

func TestTopAccountsByTypePipeline_LookupAfterLimit(t *testing.T) {
	pipeline := topAccountsByTypePipeline(5)

	names := stageNames(pipeline)
	require.Equal(t, []string{"$unwind", "$addFields", "$group", "$sort", "$limit", "$lookup", "$unwind", "$project"}, names)

	// compound group key keeps both dimensions
	group := pipeline[2][0].Value.(bson.D)
	key := group[0].Value.(bson.D)
	assert.Equal(t, "$account_id", key[0].Value)
	assert.Equal(t, "$transactions.transaction_code", key[1].Value)

	assert.Equal(t, 5, pipeline[4][0].Value)

	// join back to customers through their account list
	lookup := pipeline[5][0].Value.(bson.D)
	assert.Equal(t, customersCollection, lookup[0].Value)
	assert.Equal(t, "_id.account_id", lookup[1].Value)
	assert.Equal(t, "accounts", lookup[2].Value)
}

func TestRepairTransactionsUpdate_CoercesPriceAndTotal(t *testing.T) {
	update := repairTransactionsUpdate()

	require.Len(t, update, 1)
	require.Equal(t, "$set", stageName(update[0]))

	set := update[0][0].Value.(bson.D)
	mapSpec := set[0].Value.(bson.D)[0].Value.(bson.D)
	assert.Equal(t, "$transactions", mapSpec[0].Value)

	in := mapSpec[2].Value.(bson.D)
	fields := map[string]interface{}{}
	for _, e := range in {
		fields[e.Key] = e.Value
	}
	assert.Equal(t, "$$trans.amount", fields["amount"])
	assert.Equal(t, bson.D{{Key: "$toDouble", Value: "$$trans.price"}}, fields["price"])
	assert.Equal(t, bson.D{{Key: "$toDouble", Value: "$$trans.total"}}, fields["total"])
}

func TestUserDistributionPipeline(t *testing.T) {
	pipeline := userDistributionPipeline()

	require.Equal(t, []string{"$group", "$project", "$sort"}, stageNames(pipeline))

	group := pipeline[0][0].Value.(bson.D)
	assert.Equal(t, "$usertype", group[0].Value)
	assert.Equal(t, bson.D{{Key: "$avg", Value: "$tripduration"}}, group[2].Value)
}

func TestTripsByHourPipeline_MatchesRequestedHour(t *testing.T) {
	pipeline := tripsByHourPipeline(8)

	require.Equal(t, []string{"$group", "$match", "$project", "$sort"}, stageNames(pipeline))

	match := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "_id.hour", Value: 8}}, match)
}

func TestTripsByDayPipeline_SortsChronologically(t *testing.T) {
	pipeline := tripsByDayPipeline()

	require.Equal(t, []string{"$group", "$sort", "$project"}, stageNames(pipeline))

	group := pipeline[0][0].Value.(bson.D)
	dateToString := group[0].Value.(bson.D)[0]
	assert.Equal(t, "$dateToString", dateToString.Key)

	sort := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, sort)
}

func TestTopStationsPipeline_AppliesLimit(t *testing.T) {
	pipeline := topStationsPipeline(7)

	require.Equal(t, []string{"$group", "$sort", "$limit", "$project"}, stageNames(pipeline))
	assert.Equal(t, 7, pipeline[2][0].Value)

	group := pipeline[0][0].Value.(bson.D)
	assert.Equal(t, "$start station id", group[0].Value)
	assert.Equal(t, bson.D{{Key: "$first", Value: "$start station name"}}, group[1].Value)
}

func TestPeakHoursPipeline_MatchesHourAndDay(t *testing.T) {
	pipeline := peakHoursPipeline(domain.PeakHourFilter{Hour: 17, DayOfWeek: 6})

	require.Equal(t, []string{"$group", "$match", "$sort", "$limit", "$project"}, stageNames(pipeline))

	match := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, bson.D{
		{Key: "_id.hour", Value: 17},
		{Key: "_id.dayOfWeek", Value: 6},
	}, match)

	assert.Equal(t, 10, pipeline[3][0].Value)
}
