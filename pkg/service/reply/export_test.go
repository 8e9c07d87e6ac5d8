package reply

import "github.com/flowreach/flowreach/pkg/domain/model"

var Truncate = truncate

func BuildSystemPrompt(svc Service, profile *model.BusinessProfile, memories []*model.MemoryRecord, contextBlock string) string {
	return svc.(*client).buildSystemPrompt(profile, memories, contextBlock)
}
