package v1alpha1

// GameMasterMethods are the calls that need the game-master token
var GameMasterMethods = []string{
	CharacterService_UpdateCharacter_FullMethodName,
	CatalogService_PutEntry_FullMethodName,
	CatalogService_DeleteEntry_FullMethodName,
	CatalogService_SeedCatalog_FullMethodName,
}
