package qedu

import (
	"container/list"
	"sync"
	"time"
)

// respostaCache guarda o corpo bruto de uma resposta da API por um período
// curto, evitando chamadas duplicadas entre o passe de relatórios e o passe
// de dados estruturados da mesma geração.
type respostaCache struct {
	capacidade int
	ttl        time.Duration

	mu    sync.Mutex
	itens map[string]*list.Element
	lru   *list.List
}

type entradaCache struct {
	chave    string
	corpo    []byte
	expiraEm time.Time
}

func newRespostaCache(capacidade int, ttl time.Duration) *respostaCache {
	return &respostaCache{
		capacidade: capacidade,
		ttl:        ttl,
		itens:      make(map[string]*list.Element),
		lru:        list.New(),
	}
}

func (c *respostaCache) get(chave string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.itens[chave]
	if !ok {
		return nil, false
	}
	entrada := el.Value.(*entradaCache)
	if time.Now().After(entrada.expiraEm) {
		c.remover(el)
		return nil, false
	}
	c.lru.MoveToBack(el)
	return entrada.corpo, true
}

func (c *respostaCache) set(chave string, corpo []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.itens[chave]; ok {
		entrada := el.Value.(*entradaCache)
		entrada.corpo = corpo
		entrada.expiraEm = time.Now().Add(c.ttl)
		c.lru.MoveToBack(el)
		return
	}

	if c.lru.Len() >= c.capacidade {
		if maisAntigo := c.lru.Front(); maisAntigo != nil {
			c.remover(maisAntigo)
		}
	}

	el := c.lru.PushBack(&entradaCache{
		chave:    chave,
		corpo:    corpo,
		expiraEm: time.Now().Add(c.ttl),
	})
	c.itens[chave] = el
}

func (c *respostaCache) tamanho() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// remover exige c.mu já adquirido
func (c *respostaCache) remover(el *list.Element) {
	entrada := el.Value.(*entradaCache)
	delete(c.itens, entrada.chave)
	c.lru.Remove(el)
}
