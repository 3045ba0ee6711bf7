package vocabulary

import (
	"context"

	"github.com/custodia-labs/philcanon/internal/core/domain"
	"github.com/custodia-labs/philcanon/internal/core/ports/driven"
)

// defaultEntities is the built-in canonical table, in declaration order.
var defaultEntities = []domain.Entity{
	{Name: "Cruyff Intelligence", Code: "Philosophy_01_Cruyff_Intelligence"},
	{Name: "Michels Total", Code: "Philosophy_02_Michels_Total"},
	{Name: "VanGaal System", Code: "Philosophy_03_VanGaal_System"},
	{Name: "Kovacs Evolution", Code: "Philosophy_04_Kovacs_Evolution"},
	{Name: "Hiddink Adaptability", Code: "Philosophy_05_Hiddink_Adaptability"},
	{Name: "Beenhakker Global", Code: "Philosophy_06_Beenhakker_Global"},
	{Name: "Guardiola Positional", Code: "Philosophy_07_Guardiola_Positional"},
	{Name: "Carniglia European", Code: "Philosophy_08_Carniglia_European"},
	{Name: "Munoz Elegance", Code: "Philosophy_09_Munoz_Elegance"},
	{Name: "Aragones Revolution", Code: "Philosophy_10_Aragones_Revolution"},
	{Name: "Villalonga Method", Code: "Philosophy_11_Villalonga_Method"},
	{Name: "Emery European Specialist", Code: "Philosophy_12_Emery_European_Specialist"},
	{Name: "Pellegrini Elegance", Code: "Philosophy_13_Pellegrini_Elegance"},
	{Name: "Herrera Catenaccio", Code: "Philosophy_14_Herrera_Catenaccio"},
	{Name: "Rocco Revolution", Code: "Philosophy_15_Rocco_Revolution"},
	{Name: "Bearzot Pragmatic", Code: "Philosophy_16_Bearzot_Pragmatic"},
	{Name: "Lippi Sophistication", Code: "Philosophy_17_Lippi_Sophistication"},
	{Name: "Sacchi Pressing", Code: "Philosophy_18_Sacchi_Pressing"},
	{Name: "Trapattoni Mastery", Code: "Philosophy_19_Trapattoni_Mastery"},
	{Name: "Carcano Foundation", Code: "Philosophy_20_Carcano_Foundation"},
	{Name: "Cesarini Maquina", Code: "Philosophy_21_Cesarini_Maquina"},
	{Name: "Ferguson Mental", Code: "Philosophy_22_Ferguson_Mental"},
	{Name: "Busby Youth Revolution", Code: "Philosophy_23_Busby_Youth_Revolution"},
	{Name: "Robson English Soul", Code: "Philosophy_24_Robson_English_Soul"},
	{Name: "Venables Tactical Innovation", Code: "Philosophy_25_Venables_Tactical_Innovation"},
	{Name: "Winterbottom Foundation", Code: "Philosophy_26_Winterbottom_Foundation"},
	{Name: "Shankly Passion", Code: "Philosophy_27_Shankly_Passion"},
	{Name: "Clough Psychology", Code: "Philosophy_28_Clough_Psychology"},
	{Name: "Paisley Boot Room", Code: "Philosophy_29_Paisley_BootRoom"},
	{Name: "Heynckes Efficiency", Code: "Philosophy_30_Heynckes_Efficiency"},
	{Name: "Cramer Methodical", Code: "Philosophy_31_Cramer_Methodical"},
	{Name: "Hitzfeld Adaptive", Code: "Philosophy_32_Hitzfeld_Adaptive"},
	{Name: "Schon Tournament", Code: "Philosophy_33_Schon_Tournament"},
	{Name: "Herberger Method", Code: "Philosophy_34_Herberger_Method"},
	{Name: "Beckenbauer Libero", Code: "Philosophy_35_Beckenbauer_Libero"},
	{Name: "Wenger Development", Code: "Philosophy_36_Wenger_Development"},
	{Name: "Roux Provincial Genius", Code: "Philosophy_37_Roux_Provincial_Genius"},
	{Name: "Diniz Modern Revolution", Code: "Philosophy_38_Diniz_Modern_Revolution"},
	{Name: "Lazaroni European Fusion", Code: "Philosophy_39_Lazaroni_European_Fusion"},
	{Name: "Santana JogaBonito", Code: "Philosophy_40_Santana_JogaBonito"},
	{Name: "Zagallo Tactical", Code: "Philosophy_41_Zagallo_Tactical"},
	{Name: "Feola Organization", Code: "Philosophy_42_Feola_Organization"},
	{Name: "Menotti Artistry", Code: "Philosophy_43_Menotti_Artistry"},
	{Name: "Bilardo Pragmatism", Code: "Philosophy_44_Bilardo_Pragmatism"},
	{Name: "Bielsa Intensity", Code: "Philosophy_45_Bielsa_Intensity"},
	{Name: "Simeone Cholismo", Code: "Philosophy_46_Simeone_Cholismo"},
	{Name: "Bianchi Passion", Code: "Philosophy_47_Bianchi_Passion"},
	{Name: "Czeizler Method", Code: "Philosophy_48_Czeizler_Method"},
	{Name: "Sebes Revolutionary", Code: "Philosophy_49_Sebes_Revolutionary"},
	{Name: "Liedholm Swedish Italian", Code: "Philosophy_50_Liedholm_Swedish_Italian"},
	{Name: "Goethals Belgian Excellence", Code: "Philosophy_51_Goethals_Belgian_Excellence"},
	{Name: "Osim Intelligence", Code: "Philosophy_52_Osim_Intelligence"},
	{Name: "Lobanovskyi Scientific", Code: "Philosophy_53_Lobanovskyi_Scientific"},
	{Name: "Petru Technical", Code: "Philosophy_54_Petru_Technical"},
	{Name: "Penev Revolution", Code: "Philosophy_55_Penev_Revolution"},
	{Name: "Milutinovic Globalization", Code: "Philosophy_56_Milutinovic_Globalization"},
	{Name: "Mourinho Warfare", Code: "Philosophy_57_Mourinho_Warfare"},
	{Name: "Ranieri Miracle", Code: "Philosophy_58_Ranieri_Miracle"},
	{Name: "Suppici Genesis", Code: "Philosophy_59_Suppici_Genesis"},
	{Name: "DeVisser Global", Code: "Philosophy_60_DeVisser_Global"},
}

// defaultLegacy maps retired and informal names to canonical names.
var defaultLegacy = []domain.LegacyAlias{
	{From: "Van Gaal", To: "VanGaal System"},
	{From: "VanGaal", To: "VanGaal System"},
	{From: "Van Gaal System", To: "VanGaal System"},
	{From: "Sarri", To: "Sacchi Pressing"},
	{From: "Keegan", To: "Robson English Soul"},
	{From: "Dalglish", To: "Paisley Boot Room"},
	{From: "Clemente", To: "Bilardo Pragmatism"},
	{From: "Klopp", To: "Bielsa Intensity"},
	{From: "Tabárez", To: "Bearzot Pragmatic"},
	{From: "Tabarez", To: "Bearzot Pragmatic"},
	{From: "Caldara", To: "Rocco Revolution"},
	{From: "Ramón Díaz", To: "Menotti Artistry"},
	{From: "Ramon Diaz", To: "Menotti Artistry"},
	{From: "Ancelotti", To: "Lippi Sophistication"},
	{From: "Capello", To: "Trapattoni Mastery"},
	{From: "Scaloni", To: "Simeone Cholismo"},
	{From: "Zidane", To: "Lippi Sophistication"},
	{From: "Conte", To: "Simeone Cholismo"},
	{From: "Pochettino", To: "Bielsa Intensity"},
	{From: "Arteta", To: "Guardiola Positional"},
	{From: "Postecoglou", To: "Bielsa Intensity"},
	{From: "Xavi", To: "Guardiola Positional"},
	{From: "Inzaghi", To: "Trapattoni Mastery"},
	{From: "Spalletti", To: "Sacchi Pressing"},
	{From: "Allegri", To: "Bearzot Pragmatic"},
	{From: "Klopp Intensity", To: "Bielsa Intensity"},
}

// DefaultVocabulary returns a copy of the embedded reference vocabulary.
func DefaultVocabulary() domain.Vocabulary {
	entities := make([]domain.Entity, len(defaultEntities))
	copy(entities, defaultEntities)
	legacy := make([]domain.LegacyAlias, len(defaultLegacy))
	copy(legacy, defaultLegacy)
	return domain.Vocabulary{
		Prefix:   DefaultPrefix,
		Entities: entities,
		Legacy:   legacy,
	}
}

// Default builds the Index for the embedded reference vocabulary.
func Default() (*Index, error) {
	return Build(DefaultVocabulary())
}

// Build validates v and returns its Index.
func Build(v domain.Vocabulary) (*Index, error) {
	reg, err := NewRegistry(v.Prefix, v.Entities)
	if err != nil {
		return nil, err
	}
	return NewIndex(reg, v.Legacy)
}

// Ensure Builtin implements the interface.
var _ driven.VocabularySource = Builtin{}

// Builtin is the VocabularySource for the embedded reference vocabulary.
type Builtin struct{}

// Load returns DefaultVocabulary.
func (Builtin) Load(_ context.Context) (domain.Vocabulary, error) {
	return DefaultVocabulary(), nil
}
