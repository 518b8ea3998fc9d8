package analytics

// entityKey é a chave de agrupamento. valid=false representa a chave NULL,
// que forma um grupo próprio como no GROUP BY
type entityKey struct {
	value int64
	valid bool
}

func keyOf(p *int64) entityKey {
	if p == nil {
		return entityKey{}
	}
	return entityKey{value: *p, valid: true}
}

func (k entityKey) ptr() *int64 {
	if !k.valid {
		return nil
	}
	v := k.value
	return &v
}

// less ordena NULL antes das demais chaves
func (k entityKey) less(other entityKey) bool {
	if k.valid != other.valid {
		return !k.valid
	}
	return k.value < other.value
}

// addDistinct ignora NULL, como COUNT(DISTINCT)
func addDistinct(set map[int64]struct{}, key *int64) {
	if key != nil {
		set[*key] = struct{}{}
	}
}

// sumNullable ignora NULL, como SUM
func sumNullable(total float64, value *float64) float64 {
	if value == nil {
		return total
	}
	return total + *value
}
