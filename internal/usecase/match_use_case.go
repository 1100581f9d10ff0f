package usecase

import (
	"github.com/xavierca1/coresales/internal/entity"
)

// MatchUseCase escolhe a melhor história de sucesso do catálogo para o
// perfil do lead. Dois passes na ordem de declaração: primeiro por segmento,
// depois por indústria. Sem ranking além disso.
func MatchUseCase(catalog []entity.UseCase, industry entity.Industry, segment entity.Segment) entity.UseCase {
	if len(catalog) == 0 {
		return entity.UseCase{}
	}

	for _, uc := range catalog {
		if uc.HasSegment(segment) {
			return uc
		}
	}

	for _, uc := range catalog {
		if uc.Industry == industry {
			return uc
		}
	}

	// Fallback: a história genérica de DevOps/Tech (última do catálogo)
	return catalog[len(catalog)-1]
}

// FindUseCaseByID retorna nil quando o id não existe no catálogo.
func FindUseCaseByID(catalog []entity.UseCase, id string) *entity.UseCase {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
