package mongodb

import (
	"github.com/SscSPs/mongo_analytics_app/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stage constructors. Every stage is a bson.D so the assembled pipeline is
// deterministic: stage order and key order inside multi-key stages (sorts,
// group keys) are preserved exactly as written.

func matchStage(criteria bson.D) bson.D {
	return bson.D{{Key: "$match", Value: criteria}}
}

func groupStage(spec bson.D) bson.D {
	return bson.D{{Key: "$group", Value: spec}}
}

func sortStage(keys bson.D) bson.D {
	return bson.D{{Key: "$sort", Value: keys}}
}

func limitStage(n int) bson.D {
	return bson.D{{Key: "$limit", Value: n}}
}

func projectStage(fields bson.D) bson.D {
	return bson.D{{Key: "$project", Value: fields}}
}

func addFieldsStage(fields bson.D) bson.D {
	return bson.D{{Key: "$addFields", Value: fields}}
}

func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: path}}
}

// salariesByDeptPipeline groups employees by department and aggregates their
// salaries, largest total first.
func salariesByDeptPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: "$dept_name"},
			{Key: "total_salaries", Value: bson.D{{Key: "$sum", Value: "$salary"}}},
			{Key: "avg_salary", Value: bson.D{{Key: "$avg", Value: "$salary"}}},
			{Key: "employees_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "min_salary", Value: bson.D{{Key: "$min", Value: "$salary"}}},
			{Key: "max_salary", Value: bson.D{{Key: "$max", Value: "$salary"}}},
		}),
		sortStage(bson.D{{Key: "total_salaries", Value: -1}}),
	}
}

// activeClientsPipeline joins customers to their accounts and keeps the ones
// matching the normalized criteria. The account-limit floor is always
// present; the active flag only when the caller constrained it.
func activeClientsPipeline(filter domain.ClientFilter) mongo.Pipeline {
	criteria := bson.D{}
	if filter.Active != nil {
		criteria = append(criteria, bson.E{Key: "active", Value: *filter.Active})
	}
	criteria = append(criteria, bson.E{
		Key:   "account.limit",
		Value: bson.D{{Key: "$gte", Value: filter.MinAccountLimit}},
	})

	return mongo.Pipeline{
		lookupStage(accountsCollection, "accounts", "account_id", "account"),
		unwindStage("$account"),
		matchStage(criteria),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "name", Value: 1},
			{Key: "address", Value: 1},
			{Key: "email", Value: 1},
			{Key: "cuenta", Value: "$account.account_id"},
			{Key: "limite", Value: "$account.limit"},
		}),
	}
}

// clientsByProductPipeline counts distinct customers per account product,
// deduplicated with a set accumulator over the customer id.
func clientsByProductPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		lookupStage(accountsCollection, "accounts", "account_id", "account"),
		unwindStage("$account"),
		unwindStage("$account.products"),
		groupStage(bson.D{
			{Key: "_id", Value: "$account.products"},
			{Key: "total_clientes", Value: bson.D{{Key: "$addToSet", Value: "$_id"}}},
		}),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "producto", Value: "$_id"},
			{Key: "total_clientes", Value: bson.D{{Key: "$size", Value: "$total_clientes"}}},
		}),
	}
}

// topAccountsPipeline sums each account's transaction totals (coerced to
// double, some are stored as strings) and keeps the n largest.
func topAccountsPipeline(n int) mongo.Pipeline {
	return mongo.Pipeline{
		unwindStage("$transactions"),
		addFieldsStage(bson.D{
			{Key: "monto", Value: bson.D{{Key: "$toDouble", Value: "$transactions.total"}}},
		}),
		groupStage(bson.D{
			{Key: "_id", Value: "$account_id"},
			{Key: "monto_total", Value: bson.D{{Key: "$sum", Value: "$monto"}}},
		}),
		sortStage(bson.D{{Key: "monto_total", Value: -1}}),
		limitStage(n),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "account_id", Value: "$_id"},
			{Key: "monto_total", Value: 1},
		}),
	}
}

// topAccountsByTypePipeline is topAccountsPipeline grouped by the pair
// (account, transaction code). The lookup back to customers runs after the
// limit so only the surviving rows pay for the join.
func topAccountsByTypePipeline(n int) mongo.Pipeline {
	return mongo.Pipeline{
		unwindStage("$transactions"),
		addFieldsStage(bson.D{
			{Key: "monto", Value: bson.D{{Key: "$toDouble", Value: "$transactions.total"}}},
		}),
		groupStage(bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "account_id", Value: "$account_id"},
				{Key: "tipo_transaccion", Value: "$transactions.transaction_code"},
			}},
			{Key: "monto_total", Value: bson.D{{Key: "$sum", Value: "$monto"}}},
		}),
		sortStage(bson.D{{Key: "monto_total", Value: -1}}),
		limitStage(n),
		lookupStage(customersCollection, "_id.account_id", "accounts", "customer"),
		unwindStage("$customer"),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "account_id", Value: "$_id.account_id"},
			{Key: "nombre", Value: "$customer.name"},
			{Key: "monto_total", Value: 1},
			{Key: "tipo", Value: "$_id.tipo_transaccion"},
		}),
	}
}

// repairTransactionsUpdate is the update pipeline that rewrites every
// embedded transaction's price and total to double, leaving the other entry
// fields untouched. Running it on already-numeric data changes nothing, so
// the repair is idempotent.
func repairTransactionsUpdate() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "transactions", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$transactions"},
					{Key: "as", Value: "trans"},
					{Key: "in", Value: bson.D{
						{Key: "date", Value: "$$trans.date"},
						{Key: "amount", Value: "$$trans.amount"},
						{Key: "transaction_code", Value: "$$trans.transaction_code"},
						{Key: "symbol", Value: "$$trans.symbol"},
						{Key: "price", Value: bson.D{{Key: "$toDouble", Value: "$$trans.price"}}},
						{Key: "total", Value: bson.D{{Key: "$toDouble", Value: "$$trans.total"}}},
					}},
				}},
			}},
		}}},
	}
}

// userDistributionPipeline groups trips by rider category, busiest first.
func userDistributionPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: "$usertype"},
			{Key: "total_trips", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "average_duration", Value: bson.D{{Key: "$avg", Value: "$tripduration"}}},
		}),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "usertype", Value: "$_id"},
			{Key: "total_trips", Value: 1},
			{Key: "average_duration", Value: 1},
		}),
		sortStage(bson.D{{Key: "total_trips", Value: -1}}),
	}
}

// tripsByHourPipeline groups trips by start hour, then keeps the requested
// hour. Hour combined with the equality match makes the result a singleton.
func tripsByHourPipeline(hour int) mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "hour", Value: bson.D{{Key: "$hour", Value: "$start time"}}},
			}},
			{Key: "total_trips", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "average_duration", Value: bson.D{{Key: "$avg", Value: "$tripduration"}}},
		}),
		matchStage(bson.D{{Key: "_id.hour", Value: hour}}),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "hour", Value: "$_id.hour"},
			{Key: "total_trips", Value: 1},
			{Key: "average_duration", Value: 1},
		}),
		sortStage(bson.D{{Key: "hour", Value: -1}}),
	}
}

// tripsByDayPipeline groups trips by calendar date, oldest first.
func tripsByDayPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$start time"},
				}},
			}},
			{Key: "total_trips", Value: bson.D{{Key: "$sum", Value: 1}}},
		}),
		sortStage(bson.D{{Key: "_id", Value: 1}}),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "day", Value: "$_id"},
			{Key: "total_trips", Value: 1},
		}),
	}
}

// topStationsPipeline ranks start stations by departure count, descending.
func topStationsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: "$start station id"},
			{Key: "station_name", Value: bson.D{{Key: "$first", Value: "$start station name"}}},
			{Key: "total_trips", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "average_duration", Value: bson.D{{Key: "$avg", Value: "$tripduration"}}},
		}),
		sortStage(bson.D{{Key: "total_trips", Value: -1}}),
		limitStage(limit),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "start_station_id", Value: "$_id"},
			{Key: "station_name", Value: 1},
			{Key: "average_duration", Value: 1},
			{Key: "total_trips", Value: 1},
		}),
	}
}

// peakHoursPipeline groups trips by (hour, day-of-week) and keeps the
// requested pair. Day-of-week uses the store convention, 1 = Sunday.
func peakHoursPipeline(filter domain.PeakHourFilter) mongo.Pipeline {
	return mongo.Pipeline{
		groupStage(bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "hour", Value: bson.D{{Key: "$hour", Value: "$start time"}}},
				{Key: "dayOfWeek", Value: bson.D{{Key: "$dayOfWeek", Value: "$start time"}}},
			}},
			{Key: "total_trips", Value: bson.D{{Key: "$sum", Value: 1}}},
		}),
		matchStage(bson.D{
			{Key: "_id.hour", Value: filter.Hour},
			{Key: "_id.dayOfWeek", Value: filter.DayOfWeek},
		}),
		sortStage(bson.D{{Key: "total_trips", Value: -1}}),
		limitStage(10),
		projectStage(bson.D{
			{Key: "_id", Value: 0},
			{Key: "hour", Value: "$_id.hour"},
			{Key: "day_of_week", Value: "$_id.dayOfWeek"},
			{Key: "total_trips", Value: 1},
		}),
	}
}
