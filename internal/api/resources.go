package api

import (
	"database/sql"

	"github.com/tomazk/holdings/internal/model"
	"github.com/tomazk/holdings/internal/schema"
	"github.com/tomazk/holdings/internal/store"
)

// Validation schemas, one per holding type. Field names match the JSON wire
// format; the stores bind them to columns.

var landSchema = schema.New(
	schema.String("name"),
	schema.String("location"),
	schema.PositiveNumber("area"),
	schema.StringDefault("areaUnit", model.AreaUnitAcres),
	schema.PositiveNumber("value"),
	schema.Date("acquisitionDate"),
	schema.StringDefault("status", model.LandStatusActive),
	schema.OptionalString("description"),
)

var labourSchema = schema.New(
	schema.String("employeeName"),
	schema.String("position"),
	schema.String("department"),
	schema.StringDefault("employeeType", model.EmployeeTypeDefault),
	schema.PositiveNumber("salary"),
	schema.Date("hireDate"),
	schema.StringDefault("status", model.LabourStatusActive),
	schema.OptionalString("skills"),
	schema.OptionalString("contactInfo"),
	schema.OptionalString("collaborationType"),
	schema.OptionalString("contributionArea"),
	schema.OptionalNumber("networkValue"),
	schema.OptionalInt("projectsLed"),
	schema.OptionalString("teamImpact"),
	schema.OptionalString("mentorshipRole"),
	schema.OptionalBool("isOutsourced"),
	schema.OptionalInt("teamSize"),
	schema.OptionalNumber("impactMultiplier"),
	schema.OptionalString("collectiveAchievements"),
)

var capitalSchema = schema.New(
	schema.String("name"),
	schema.String("type"),
	schema.String("category"),
	schema.Number("amount"),
	schema.StringDefault("currency", model.CurrencyDefault),
	schema.Date("acquisitionDate"),
	schema.OptionalDate("maturityDate"),
	schema.StringDefault("status", model.CapitalStatusActive),
	schema.OptionalString("description"),
	schema.OptionalNumber("returns"),
)

var technologySchema = schema.New(
	schema.String("name"),
	schema.String("type"),
	schema.String("category"),
	schema.OptionalString("manufacturer"),
	schema.OptionalString("model"),
	schema.OptionalString("serialNumber"),
	schema.Date("purchaseDate"),
	schema.PositiveNumber("purchasePrice"),
	schema.NumberDefault("maintenanceCost", 0),
	schema.StringDefault("status", model.TechnologyStatusOperational),
	schema.OptionalString("location"),
	schema.OptionalString("specifications"),
	schema.OptionalNumber("automationLevel"),
	schema.OptionalString("aiCapabilities"),
)

var informationSchema = schema.New(
	schema.String("title"),
	schema.String("category"),
	schema.String("type"),
	schema.OptionalString("source"),
	schema.Date("acquisitionDate"),
	schema.StringDefault("confidentiality", model.ConfidentialityInternal),
	schema.OptionalString("value"),
	schema.OptionalString("fileUrl"),
	schema.OptionalString("summary"),
	schema.OptionalString("tags"),
)

var businessSchema = schema.New(
	schema.String("name"),
	schema.String("industry"),
	schema.OptionalString("registrationNumber"),
	schema.Date("establishedDate"),
	schema.NumberRange("ownershipPercentage", 0, 100),
	schema.Number("investmentAmount"),
	schema.Number("currentValue"),
	schema.StringDefault("status", model.BusinessStatusActive),
	schema.OptionalString("location"),
	schema.IntDefault("employees", 0),
	schema.OptionalNumber("annualRevenue"),
	schema.OptionalString("description"),
	schema.OptionalString("website"),
)

var contentSchema = schema.New(
	schema.String("title"),
	schema.String("contentType"),
	schema.String("platform"),
	schema.DateTime("publicationDate"),
	schema.NumberDefault("audienceReach", 0),
	schema.NumberDefault("viewCount", 0),
	schema.NumberDefault("engagementRate", 0),
	schema.BoolDefault("isRepeatable", true),
	schema.StringDefault("distributionChannels", ""),
	schema.NumberDefault("productionCost", 0),
	schema.NumberDefault("revenueGenerated", 0),
	schema.OptionalString("contentUrl"),
	schema.StringDefault("status", model.ContentStatusPublished),
	schema.OptionalString("description"),
)

func newLandHandler(db *sql.DB) *resourceHandler[model.Land] {
	return &resourceHandler[model.Land]{
		db: db, name: "land", schema: landSchema,
		store: storeFuncs[model.Land]{
			list:   store.ListLand,
			create: store.CreateLand,
			get:    store.GetLand,
			update: store.UpdateLand,
			remove: store.DeleteLand,
		},
	}
}

func newLabourHandler(db *sql.DB) *resourceHandler[model.Labour] {
	return &resourceHandler[model.Labour]{
		db: db, name: "labour", schema: labourSchema,
		store: storeFuncs[model.Labour]{
			list:   store.ListLabour,
			create: store.CreateLabour,
			get:    store.GetLabour,
			update: store.UpdateLabour,
			remove: store.DeleteLabour,
		},
	}
}

func newCapitalHandler(db *sql.DB) *resourceHandler[model.Capital] {
	return &resourceHandler[model.Capital]{
		db: db, name: "capital", schema: capitalSchema,
		store: storeFuncs[model.Capital]{
			list:   store.ListCapital,
			create: store.CreateCapital,
			get:    store.GetCapital,
			update: store.UpdateCapital,
			remove: store.DeleteCapital,
		},
	}
}

func newTechnologyHandler(db *sql.DB) *resourceHandler[model.Technology] {
	return &resourceHandler[model.Technology]{
		db: db, name: "technology", schema: technologySchema,
		store: storeFuncs[model.Technology]{
			list:   store.ListTechnology,
			create: store.CreateTechnology,
			get:    store.GetTechnology,
			update: store.UpdateTechnology,
			remove: store.DeleteTechnology,
		},
	}
}

func newInformationHandler(db *sql.DB) *resourceHandler[model.Information] {
	return &resourceHandler[model.Information]{
		db: db, name: "information", schema: informationSchema,
		store: storeFuncs[model.Information]{
			list:   store.ListInformation,
			create: store.CreateInformation,
			get:    store.GetInformation,
			update: store.UpdateInformation,
			remove: store.DeleteInformation,
		},
	}
}

func newBusinessHandler(db *sql.DB) *resourceHandler[model.Business] {
	return &resourceHandler[model.Business]{
		db: db, name: "business", schema: businessSchema,
		store: storeFuncs[model.Business]{
			list:   store.ListBusinesses,
			create: store.CreateBusiness,
			get:    store.GetBusiness,
			update: store.UpdateBusiness,
			remove: store.DeleteBusiness,
		},
	}
}

func newContentHandler(db *sql.DB) *resourceHandler[model.Content] {
	return &resourceHandler[model.Content]{
		db: db, name: "content", schema: contentSchema,
		store: storeFuncs[model.Content]{
			list:   store.ListContent,
			create: store.CreateContent,
			get:    store.GetContent,
			update: store.UpdateContent,
			remove: store.DeleteContent,
		},
	}
}
