package service

import "github.com/Meghali54/Aquilia-AI-sub000/internal/models"

// DefaultCatalog returns a fresh copy of the built-in marine species panel.
// Callers own the returned slice.
func DefaultCatalog() []models.ReferenceSequence {
	return []models.ReferenceSequence{
		{
			ID:          "Sardinella aurita",
			CommonName:  "Round Sardinella",
			Family:      "Clupeidae",
			Habitat:     "Pelagic waters, coastal areas",
			Description: "Small schooling fish, important commercial species",
			Sequence:    "ATGGCAAACCTCGAAAGGATCGCCGTGGAGCTCGAGGGCGAGAAGGGCGAAGTCCTGGGCACAGATGTCCAGGCTCGGGACAACGGCGTCGTCATCACCGGGGCCCCGAGGGCTCTCATCCACCGCGTCGCCGTAGACGTGGCCGCTCTCGCAGTACCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACTGAG",
		},
		{
			ID:          "Thunnus thynnus",
			CommonName:  "Atlantic Bluefin Tuna",
			Family:      "Scombridae",
			Habitat:     "Open ocean, pelagic zone",
			Description: "Large migratory tuna, highly prized for sashimi",
			Sequence:    "ATGGCCCAGTCCGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTPTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAG",
		},
		{
			ID:          "Gadus morhua",
			CommonName:  "Atlantic Cod",
			Family:      "Gadidae",
			Habitat:     "Cold temperate waters, demersal",
			Description: "Important commercial fish, cold water species",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAG",
		},
		{
			ID:          "Salmo salar",
			CommonName:  "Atlantic Salmon",
			Family:      "Salmonidae",
			Habitat:     "Anadromous, rivers and ocean",
			Description: "Migratory fish, spawns in freshwater",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTAGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAG",
		},
		{
			ID:          "Merluccius bilinearis",
			CommonName:  "Silver Hake",
			Family:      "Merlucciidae",
			Habitat:     "Continental shelf waters",
			Description: "Predatory fish, commercially important",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGTTGACCGAG",
		},
		{
			ID:          "Sebastes norvegicus",
			CommonName:  "Golden Redfish",
			Family:      "Sebastidae",
			Habitat:     "Deep waters, rocky bottoms",
			Description: "Long-lived rockfish, slow growing",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGTG",
		},
		{
			ID:          "Hippoglossus hippoglossus",
			CommonName:  "Atlantic Halibut",
			Family:      "Pleuronectidae",
			Habitat:     "Deep waters, benthic",
			Description: "Largest flatfish, valuable commercial species",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAA",
		},
		{
			ID:          "Scomber scombrus",
			CommonName:  "Atlantic Mackerel",
			Family:      "Scombridae",
			Habitat:     "Pelagic waters, migratory",
			Description: "Fast swimming schooling fish",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAC",
		},
		{
			ID:          "Pleuronectes platessa",
			CommonName:  "European Plaice",
			Family:      "Pleuronectidae",
			Habitat:     "Sandy bottoms, coastal waters",
			Description: "Flatfish, important food fish",
			Sequence:    "ATGGCCAACCTTGACCCGATCCTCGTGGACCTGGAGAAGAAGAACGGCGCCATCCTGGCCACGGATGTGCAGGCTCGGGATAACGGCGTCATCATCACCGGGGCCCCGAGGGCCCTCATCCACCGCGTCGCCGTGGACGTGGCCGCCCTCGCAGTCCCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACCGAT",
		},
		{
			ID:          "Clupea harengus",
			CommonName:  "Atlantic Herring",
			Family:      "Clupeidae",
			Habitat:     "Coastal and offshore waters",
			Description: "Schooling fish, historically important",
			Sequence:    "ATGGCAAACCTCGAAAGGATCGCCGTGGAGCTCGAGGGCGAGAAGGGCGAAGTCCTGGGCACAGATGTCCAGGCTCGGGACAACGGCGTCGTCATCACCGGGGCCCCGAGGGCTCTCATCCACCGCGTCGCCGTAGACGTGGCCGCTCTCGCAGTACCGGATACCGGAGTCCCCGTGCTCGGGTACCGAGTCGCCGTTGCCGTGGCCAACGTCCACGTAGTCGCCACCGCCACCGGCAGCTACGTGGTACAGGTGCTACCTTTCCTCTACAAGTCCAAGGTAGACAAGCTGACTGAT",
		},
	}
}
