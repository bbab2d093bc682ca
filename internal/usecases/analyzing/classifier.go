package analyzing

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Partition indica a qual período um registro pertence
type Partition int

const (
	Excluded Partition = iota
	Current
	Previous
)

func (p Partition) String() string {
	switch p {
	case Current:
		return "current"
	case Previous:
		return "previous"
	default:
		return "excluded"
	}
}

// Classifier separa registros entre o período atual e o de comparação.
// "to" cobre o dia inteiro que nomeia; compareTo é exclusivo e nunca
// concorre com from, então o instante from sempre cai em Current.
type Classifier struct {
	from        time.Time
	upper       *time.Time
	compareFrom *time.Time
}

// NewClassifier cria um classificador. to e compareFrom são opcionais.
func NewClassifier(from time.Time, to, compareFrom *time.Time) Classifier {
	c := Classifier{from: from, compareFrom: compareFrom}
	if to != nil {
		upper := domain.EndOfDay(*to)
		c.upper = &upper
	}
	return c
}

func (c Classifier) Classify(t time.Time) Partition {
	if !t.Before(c.from) {
		if c.upper != nil && !t.Before(*c.upper) {
			return Excluded
		}
		return Current
	}

	if c.compareFrom != nil && !t.Before(*c.compareFrom) {
		return Previous
	}

	return Excluded
}

// timestamped é qualquer registro com data de criação
type timestamped interface {
	Timestamp() time.Time
}

// Split separa os registros em atual e anterior, descartando os excluídos
func Split[R timestamped](c Classifier, records []R) (current []R, previous []R) {
	current = make([]R, 0, len(records))
	previous = make([]R, 0)
	for _, record := range records {
		switch c.Classify(record.Timestamp()) {
		case Current:
			current = append(current, record)
		case Previous:
			previous = append(previous, record)
		}
	}
	return current, previous
}
