package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/league --output domain/league --outpkg leaguemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RuleRepository --dir ../domain/channel --output domain/channel --outpkg channelmock --filename rule_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/priority --output domain/priority --outpkg prioritymock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/checklist --output domain/checklist --outpkg checklistmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EventSource --dir ../usecase --output usecase --outpkg usecasemock --filename event_source_mock.go
