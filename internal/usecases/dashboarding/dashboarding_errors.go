package dashboarding

import "errors"

var (
	ErrDatasetNotLoaded = errors.New("dataset ainda não foi carregado")
	ErrReloadDataset    = errors.New("erro ao recarregar dataset")
)
