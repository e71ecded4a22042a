package metricas

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t21arenapark/painel/internal/cache"
)

type repoFake struct {
	chamadas int32
	falha    error
}

func (f *repoFake) contar() { atomic.AddInt32(&f.chamadas, 1) }

func (f *repoFake) Atletas(ctx context.Context) (Quantidade, error) {
	f.contar()
	return Quantidade{Amount: 1234}, nil
}

func (f *repoFake) Anamneses(ctx context.Context) (Quantidade, error) {
	f.contar()
	return Quantidade{Amount: 12}, nil
}

func (f *repoFake) Responsaveis(ctx context.Context) (Quantidade, error) {
	f.contar()
	return Quantidade{Amount: 8}, f.falha
}

func (f *repoFake) IdadeMedia(ctx context.Context) (Quantidade, error) {
	f.contar()
	return Quantidade{Amount: 12.5}, nil
}

func (f *repoFake) Generos(ctx context.Context) ([]PorGenero, error) {
	f.contar()
	return []PorGenero{{Gender: "male", Amount: 3}, {Gender: "female", Amount: 1}}, nil
}

func (f *repoFake) UltimaSemana(ctx context.Context) ([]PorDia, error) {
	f.contar()
	return []PorDia{{Date: "2026-10-14", Count: 2}, {Date: "2026-10-15", Count: 4}}, nil
}

func TestNumeroPtBR(t *testing.T) {
	assert.Equal(t, "1.234", Numero(1234))
	assert.Equal(t, "12,5", Numero(12.5))
	assert.Equal(t, "0", Numero(0))
}

func TestDia(t *testing.T) {
	assert.Equal(t, "14/10", Dia("2026-10-14"))
	assert.Equal(t, "xx", Dia("xx"))
}

func TestPainelUsaCache(t *testing.T) {
	repo := &repoFake{}
	s := NewServico(repo)
	c := cache.New(0)

	p, err := s.Painel(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, p.Atletas.Amount)
	assert.Len(t, p.Generos, 2)
	assert.Equal(t, int32(6), atomic.LoadInt32(&repo.chamadas))

	_, err = s.Painel(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int32(6), atomic.LoadInt32(&repo.chamadas))
}

func TestPainelPropagaFalha(t *testing.T) {
	s := NewServico(&repoFake{falha: errors.New("indisponível")})
	_, err := s.Painel(context.Background(), cache.New(0))
	assert.Error(t, err)
}

func TestDashboardRenderiza(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&repoFake{}).Dashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Find(".metric-card").Length())
	assert.Equal(t, "1.234", doc.Find(".metric-card .amount").First().Text())
	assert.Equal(t, 2, doc.Find(".chart.week li").Length())
	style, _ := doc.Find(".chart.week li .bar").Last().Attr("style")
	assert.Equal(t, "height:100%", style)
	assert.Contains(t, doc.Find(".chart.gender").Text(), "Masculino")
}

func TestDashboardComFalhaMostraErro(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&repoFake{falha: errors.New("indisponível")}).Dashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
