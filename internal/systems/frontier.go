package systems

import (
	"container/heap"
	"tactics-core/internal/domain"
)

// frontierItem - узел, ожидающий раскрытия
type frontierItem struct {
	Pos  domain.TilePos
	Cost int    // накопленная цена от старта
	Seq  uint64 // порядок обнаружения: при равной цене раньше раскрывается тот, кто найден раньше
}

// frontier реализует heap.Interface (MinHeap по Cost, затем по Seq)
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *frontier) Push(x interface{}) {
	*pq = append(*pq, x.(*frontierItem))
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	*pq = old[0 : n-1]
	return item
}

// frontierQueue - обертка, которая сама раздает порядковые номера
type frontierQueue struct {
	items frontier
	seq   uint64
}

func (q *frontierQueue) push(pos domain.TilePos, cost int) {
	heap.Push(&q.items, &frontierItem{Pos: pos, Cost: cost, Seq: q.seq})
	q.seq++
}

func (q *frontierQueue) pop() *frontierItem {
	return heap.Pop(&q.items).(*frontierItem)
}

func (q *frontierQueue) len() int {
	return q.items.Len()
}
