package main

import (
	"laundrypro/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.StaffProfileModel{},
		model.ServiceModel{},
		model.BranchModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.OrderCounterModel{},
		model.IssueModel{},
		model.NotificationModel{},
		model.ActivityLogModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
