// Package ticket генерирует лотерейные билеты: отсортированные наборы
// уникальных случайных чисел из заданного диапазона.
//
// Пакет никогда не возвращает ошибок. Любые некорректные параметры
// или внутренний сбой дают пустой билет.
package ticket

import (
	"math/rand/v2"
	"slices"
	"sync"
)

const (
	// MinBound — наименьшее допустимое значение границы диапазона.
	MinBound = 1
	// MaxBound — наибольшее допустимое значение границы диапазона.
	MaxBound = 1000
)

// Drawer вытягивает билеты из собственного источника случайных чисел.
// Безопасен для конкурентного использования.
type Drawer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDrawer создаёт Drawer. Если rnd равен nil, используется глобальный источник math/rand/v2.
func NewDrawer(rnd *rand.Rand) *Drawer {
	return &Drawer{rnd: rnd}
}

// Valid проверяет параметры билета.
func Valid(min, max, quantity int) bool {
	switch {
	case min >= max:
		return false
	case quantity <= 0:
		return false
	case min < MinBound || min > MaxBound:
		return false
	case max < MinBound || max > MaxBound:
		return false
	case quantity > max-min+1:
		return false
	}
	return true
}

// Numbers возвращает quantity уникальных чисел из [min, max] по возрастанию,
// используя глобальный источник случайных чисел.
func Numbers(min, max, quantity int) []int {
	return defaultDrawer.Draw(min, max, quantity)
}

var defaultDrawer = NewDrawer(nil)

// Draw возвращает quantity уникальных чисел из [min, max] по возрастанию.
// При некорректных параметрах возвращается пустой срез.
func (d *Drawer) Draw(min, max, quantity int) (res []int) {
	if !Valid(min, max, quantity) {
		return []int{}
	}

	defer func() {
		if r := recover(); r != nil {
			res = []int{}
		}
	}()

	pool := make([]int, max-min+1)
	for i := range pool {
		pool[i] = min + i
	}

	// Частичное перемешивание Фишера — Йетса: первые quantity элементов
	// образуют равномерную выборку без повторений.
	for i := 0; i < quantity; i++ {
		j := i + d.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	res = pool[:quantity:quantity]
	slices.Sort(res)
	return res
}

func (d *Drawer) intN(n int) int {
	if d.rnd == nil {
		return rand.IntN(n)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rnd.IntN(n)
}
