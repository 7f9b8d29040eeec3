package theme

import "git.lost.host/meutraa/bmsc/internal/judgement"

type Theme interface {
	RenderJudgement(j judgement.Judgement) string
	RenderColumn(column string) string
	Separator() string
}
